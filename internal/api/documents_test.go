package api_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func multipartBody(t *testing.T, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	require.NoError(t, mw.WriteField("nomeDocumento", name))
	require.NoError(t, mw.WriteField("tipoDocumento", "contrato"))

	fw, err := mw.CreateFormFile("file", "Contrato Social.pdf")
	require.NoError(t, err)

	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return buf, mw.FormDataContentType()
}

func TestHandler_UploadDocument(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	companyID := uuid.Must(uuid.NewV4())
	content := []byte("%PDF-1.4 test")

	a.svc.EXPECT().UploadDocument(gomock.Any(), companyID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in entity.DocumentInput) (entity.Document, error) {
			raw, err := io.ReadAll(in.Content)
			if err != nil {
				return entity.Document{}, err
			}

			return entity.Document{
				ID:        uuid.Must(uuid.NewV4()),
				CompanyID: companyID,
				Name:      in.Name,
				Kind:      in.Kind,
				FileName:  in.FileName,
				FileSize:  int64(len(raw)),
			}, nil
		})

	body, contentType := multipartBody(t, "Contrato", content)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		a.srv.URL+"/api/documentos-cliente/upload/"+companyID.String(), body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	doc := decode[entity.Document](t, resp)
	require.Equal(t, "Contrato", doc.Name)
	require.Equal(t, "contrato", doc.Kind)
	require.Equal(t, "Contrato Social.pdf", doc.FileName)
	require.Equal(t, int64(len(content)), doc.FileSize)
}

func TestHandler_UploadDocument_MissingFile(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("nomeDocumento", "Contrato"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		a.srv.URL+"/api/documentos-cliente/upload/"+uuid.Must(uuid.NewV4()).String(), buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_DownloadDocument(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	id := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().DownloadDocument(gomock.Any(), id).Return(entity.DownloadedDocument{
		FileName: "Alvará 2025.pdf",
		MimeType: "application/pdf",
		Content:  io.NopCloser(strings.NewReader("pdf-bytes")),
	}, nil)

	resp := a.do(t, http.MethodGet, "/api/documentos-cliente/download/"+id.String(), userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "pdf-bytes", string(raw))
}

func TestHandler_DownloadDocument_NotFound(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	id := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().DownloadDocument(gomock.Any(), id).Return(entity.DownloadedDocument{}, entity.ErrNotFound)

	resp := a.do(t, http.MethodGet, "/api/documentos-cliente/download/"+id.String(), userToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
