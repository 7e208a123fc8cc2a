package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

// Companies godoc
// @Summary      Lista de clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entity.Company
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /clientes [get]
func (h *Handler) Companies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companies, err := h.s.Companies(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar clientes")
		return
	}

	SendJSON(ctx, w, http.StatusOK, companies)
}

// Company godoc
// @Summary      Cliente por id
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Id do cliente"
// @Success      200 {object} entity.Company
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /clientes/{id} [get]
func (h *Handler) Company(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	company, err := h.s.Company(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar cliente")
		return
	}

	SendJSON(ctx, w, http.StatusOK, company)
}

// CompanyByCNPJ godoc
// @Summary      Busca cliente cadastrado por CNPJ
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        cnpj path string true "CNPJ com ou sem máscara"
// @Success      200 {object} entity.Company
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /clientes/search/cnpj/{cnpj} [get]
func (h *Handler) CompanyByCNPJ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, err := h.s.CompanyByCNPJ(ctx, chi.URLParam(r, "cnpj"))
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao buscar cliente")
		return
	}

	SendJSON(ctx, w, http.StatusOK, company)
}

// CreateCompany godoc
// @Summary      Cadastro de cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.CompanyInput true "Dados do cliente"
// @Success      201 {object} entity.Company
// @Failure      400 {object} ResponseError
// @Failure      409 {object} ResponseError "CNPJ já cadastrado"
// @Router       /clientes [post]
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.CompanyInput

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	company, err := h.s.CreateCompany(ctx, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao criar cliente")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, company)
}

// UpdateCompany godoc
// @Summary      Atualização de cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Id do cliente"
// @Param        request body entity.CompanyInput true "Dados do cliente"
// @Success      200 {object} entity.Company
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /clientes/{id} [put]
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	var req entity.CompanyInput

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	company, err := h.s.UpdateCompany(ctx, id, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao atualizar cliente")
		return
	}

	SendJSON(ctx, w, http.StatusOK, company)
}

// DeleteCompany godoc
// @Summary      Exclusão de cliente com alvarás, atividades e documentos
// @Tags         clientes
// @Security     BearerAuth
// @Param        id path string true "Id do cliente"
// @Success      204
// @Failure      404 {object} ResponseError
// @Router       /clientes/{id} [delete]
func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	err = h.s.DeleteCompany(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao excluir cliente")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
