package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Documents struct {
	c *Client
}

func NewDocuments(c *Client) *Documents {
	return &Documents{c: c}
}

type DocumentMeta struct {
	Name     string
	Kind     string
	FileName string
}

func (g *Documents) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Document, error) {
	var docs []entity.Document

	err := g.c.get(ctx, "/documentos-cliente/cliente/"+companyID.String(), nil, &docs)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (g *Documents) Upload(ctx context.Context, companyID uuid.UUID, meta DocumentMeta, content io.Reader) (entity.Document, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	err := mw.WriteField("nomeDocumento", meta.Name)
	if err != nil {
		return entity.Document{}, fmt.Errorf("write field: %w", err)
	}

	if meta.Kind != "" {
		err = mw.WriteField("tipoDocumento", meta.Kind)
		if err != nil {
			return entity.Document{}, fmt.Errorf("write field: %w", err)
		}
	}

	fw, err := mw.CreateFormFile("file", meta.FileName)
	if err != nil {
		return entity.Document{}, fmt.Errorf("create form file: %w", err)
	}

	_, err = io.Copy(fw, content)
	if err != nil {
		return entity.Document{}, fmt.Errorf("copy file: %w", err)
	}

	err = mw.Close()
	if err != nil {
		return entity.Document{}, fmt.Errorf("close multipart: %w", err)
	}

	req, err := g.c.newRequest(ctx, http.MethodPost, "/documentos-cliente/upload/"+companyID.String(), nil, body)
	if err != nil {
		return entity.Document{}, err
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc entity.Document

	err = g.c.send(req, &doc)

	return doc, err
}

// Download streams the file. The caller closes Content.
func (g *Documents) Download(ctx context.Context, id uuid.UUID) (entity.DownloadedDocument, error) {
	req, err := g.c.newRequest(ctx, http.MethodGet, "/documentos-cliente/download/"+id.String(), nil, nil)
	if err != nil {
		return entity.DownloadedDocument{}, err
	}

	resp, err := g.c.http.Do(req)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return entity.DownloadedDocument{}, decodeError(resp)
	}

	doc := entity.DownloadedDocument{
		MimeType: resp.Header.Get("Content-Type"),
		Content:  resp.Body,
	}

	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	if err == nil {
		doc.FileName = params["filename"]
	}

	return doc, nil
}

func (g *Documents) Delete(ctx context.Context, id uuid.UUID) error {
	return g.c.delete(ctx, "/documentos-cliente/"+id.String())
}
