package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

// PermitRequest accepts dates as YYYY-MM-DD or RFC 3339.
type PermitRequest struct {
	CompanyID        string                   `json:"clienteId"`
	Type             entity.PermitType        `json:"type"`
	RequestDate      string                   `json:"requestDate"`
	IssueDate        string                   `json:"issueDate,omitempty"`
	ExpirationDate   string                   `json:"expirationDate,omitempty"`
	ProcessingStatus *entity.ProcessingStatus `json:"processingStatus,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
}

func (req PermitRequest) Input() (entity.PermitInput, error) {
	verr := &entity.ValidationError{}
	in := entity.PermitInput{
		Type:             req.Type,
		ProcessingStatus: req.ProcessingStatus,
		Notes:            req.Notes,
	}

	if req.CompanyID != "" {
		id, err := uuid.FromString(req.CompanyID)
		if err != nil {
			verr.Add("clienteId", "Cliente inválido")
		}

		in.CompanyID = id
	}

	requestDate, err := parseDate(req.RequestDate)
	if err != nil {
		verr.Add("requestDate", "Data inválida")
	} else if requestDate != nil {
		in.RequestDate = *requestDate
	}

	in.IssueDate, err = parseDate(req.IssueDate)
	if err != nil {
		verr.Add("issueDate", "Data inválida")
	}

	in.ExpirationDate, err = parseDate(req.ExpirationDate)
	if err != nil {
		verr.Add("expirationDate", "Data inválida")
	}

	if !verr.Empty() {
		return entity.PermitInput{}, verr
	}

	return in, nil
}

type PermitOptionsResponse struct {
	Types            []entity.PermitType             `json:"tipos"`
	ProcessingStatus []entity.ProcessingStatusOption `json:"processingStatus"`
}

// Permits godoc
// @Summary      Lista de alvarás
// @Description  Status é calculado a partir das datas no momento da consulta
// @Tags         alvaras
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Nome do cliente, CNPJ ou tipo"
// @Param        tipo query []string false "Tipos de alvará"
// @Param        status query []string false "pending, valid, expiring, expired"
// @Success      200 {array} entity.Permit
// @Failure      401 {object} ResponseError
// @Router       /alvaras [get]
func (h *Handler) Permits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := entity.PermitsFilter{Search: query.Get("search")}

	for _, t := range query["tipo"] {
		filter.Types = append(filter.Types, entity.PermitType(t))
	}

	for _, s := range query["status"] {
		status := entity.PermitStatus(s)
		if !status.IsValid() {
			SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Status inválido")
			return
		}

		filter.Statuses = append(filter.Statuses, status)
	}

	permits, err := h.s.Permits(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar alvarás")
		return
	}

	SendJSON(ctx, w, http.StatusOK, permits)
}

// PermitOptions godoc
// @Summary      Tipos de alvará e status de processamento
// @Tags         alvaras
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} PermitOptionsResponse
// @Router       /alvaras/opcoes [get]
func (h *Handler) PermitOptions(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, PermitOptionsResponse{
		Types:            entity.PermitTypes,
		ProcessingStatus: entity.ProcessingStatusOptions,
	})
}

// PermitsByCompany godoc
// @Summary      Alvarás de um cliente
// @Tags         alvaras
// @Produce      json
// @Security     BearerAuth
// @Param        clienteId path string true "Id do cliente"
// @Success      200 {array} entity.Permit
// @Failure      400 {object} ResponseError
// @Router       /alvaras/cliente/{clienteId} [get]
func (h *Handler) PermitsByCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := uuidParam(r, "clienteId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	permits, err := h.s.PermitsByCompany(ctx, companyID)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar alvarás")
		return
	}

	SendJSON(ctx, w, http.StatusOK, permits)
}

// Permit godoc
// @Summary      Alvará por id
// @Tags         alvaras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Id do alvará"
// @Success      200 {object} entity.Permit
// @Failure      404 {object} ResponseError
// @Router       /alvaras/{id} [get]
func (h *Handler) Permit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	permit, err := h.s.Permit(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar alvará")
		return
	}

	SendJSON(ctx, w, http.StatusOK, permit)
}

// CreatePermit godoc
// @Summary      Cadastro de alvará
// @Tags         alvaras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PermitRequest true "Dados do alvará"
// @Success      201 {object} entity.Permit
// @Failure      400 {object} ResponseError
// @Router       /alvaras [post]
func (h *Handler) CreatePermit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := decodePermit(r)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadRequestText)
		return
	}

	permit, err := h.s.CreatePermit(ctx, in)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao criar alvará")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, permit)
}

// UpdatePermit godoc
// @Summary      Atualização de alvará
// @Tags         alvaras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Id do alvará"
// @Param        request body PermitRequest true "Dados do alvará"
// @Success      200 {object} entity.Permit
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /alvaras/{id} [put]
func (h *Handler) UpdatePermit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	in, err := decodePermit(r)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadRequestText)
		return
	}

	permit, err := h.s.UpdatePermit(ctx, id, in)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao atualizar alvará")
		return
	}

	SendJSON(ctx, w, http.StatusOK, permit)
}

// DeletePermit godoc
// @Summary      Exclusão de alvará
// @Tags         alvaras
// @Security     BearerAuth
// @Param        id path string true "Id do alvará"
// @Success      204
// @Failure      404 {object} ResponseError
// @Router       /alvaras/{id} [delete]
func (h *Handler) DeletePermit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	err = h.s.DeletePermit(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao excluir alvará")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodePermit(r *http.Request) (entity.PermitInput, error) {
	var req PermitRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return entity.PermitInput{}, entity.NewValidationError(entity.ErrIncorrectRequestBody, "body", errBadRequestText)
	}

	return req.Input()
}
