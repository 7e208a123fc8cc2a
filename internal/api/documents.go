package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

const multipartMemory = 8 << 20

// Documents godoc
// @Summary      Documentos de um cliente
// @Tags         documentos-cliente
// @Produce      json
// @Security     BearerAuth
// @Param        clienteId path string true "Id do cliente"
// @Success      200 {array} entity.Document
// @Router       /documentos-cliente/cliente/{clienteId} [get]
func (h *Handler) Documents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := uuidParam(r, "clienteId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	docs, err := h.s.Documents(ctx, companyID)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar documentos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, docs)
}

// UploadDocument godoc
// @Summary      Envio de documento
// @Tags         documentos-cliente
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        clienteId path string true "Id do cliente"
// @Param        nomeDocumento formData string true "Nome do documento"
// @Param        tipoDocumento formData string false "Tipo do documento"
// @Param        file formData file true "Arquivo"
// @Success      201 {object} entity.Document
// @Failure      400 {object} ResponseError
// @Failure      413 {object} ResponseError
// @Router       /documentos-cliente/upload/{clienteId} [post]
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := uuidParam(r, "clienteId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartMemory)
	}

	err = r.ParseMultipartForm(multipartMemory)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, "Arquivo muito grande")
			return
		}

		SendErr(ctx, w, http.StatusBadRequest, err, "Formulário inválido")

		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Arquivo é obrigatório")
		return
	}
	defer file.Close()

	doc, err := h.s.UploadDocument(ctx, companyID, entity.DocumentInput{
		Name:     r.FormValue("nomeDocumento"),
		Kind:     r.FormValue("tipoDocumento"),
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao fazer upload")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, doc)
}

// DownloadDocument godoc
// @Summary      Download de documento
// @Tags         documentos-cliente
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id path string true "Id do documento"
// @Success      200 {file} file
// @Failure      404 {object} ResponseError
// @Router       /documentos-cliente/download/{id} [get]
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	doc, err := h.s.DownloadDocument(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao baixar documento")
		return
	}
	defer doc.Content.Close()

	contentType := doc.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.WriteHeader(http.StatusOK)

	_, err = io.Copy(w, doc.Content)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("write document: %s", err), "document_id", id)
	}
}

// DeleteDocument godoc
// @Summary      Exclusão de documento
// @Tags         documentos-cliente
// @Security     BearerAuth
// @Param        id path string true "Id do documento"
// @Success      204
// @Failure      404 {object} ResponseError
// @Router       /documentos-cliente/{id} [delete]
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	err = h.s.DeleteDocument(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao excluir documento")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
