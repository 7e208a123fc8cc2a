package api

import (
	"encoding/json"
	"net/http"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

// Activities godoc
// @Summary      Atividades secundárias de um cliente
// @Tags         atividades-secundarias
// @Produce      json
// @Security     BearerAuth
// @Param        clienteId path string true "Id do cliente"
// @Success      200 {array} entity.Activity
// @Router       /atividades-secundarias/cliente/{clienteId} [get]
func (h *Handler) Activities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := uuidParam(r, "clienteId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	activities, err := h.s.Activities(ctx, companyID)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar atividades")
		return
	}

	SendJSON(ctx, w, http.StatusOK, activities)
}

// CreateActivity godoc
// @Summary      Cadastro de atividade secundária
// @Tags         atividades-secundarias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Id do cliente"
// @Param        request body entity.ActivityInput true "Código e descrição"
// @Success      201 {object} entity.Activity
// @Failure      400 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Router       /atividades-secundarias/{id} [post]
func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// company id, named id to share the wildcard with DELETE
	companyID, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	var req entity.ActivityInput

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	activity, err := h.s.CreateActivity(ctx, companyID, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao criar atividade")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, activity)
}

// DeleteActivity godoc
// @Summary      Exclusão de atividade secundária
// @Tags         atividades-secundarias
// @Security     BearerAuth
// @Param        id path string true "Id da atividade"
// @Success      204
// @Router       /atividades-secundarias/{id} [delete]
func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	err = h.s.DeleteActivity(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao excluir atividade")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
