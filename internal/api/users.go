package api

import "net/http"

// Users godoc
// @Summary      Lista de usuários
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entity.User
// @Failure      403 {object} ResponseError
// @Router       /users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.Users(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar usuários")
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

// DeleteUser godoc
// @Summary      Exclusão de usuário
// @Tags         users
// @Security     BearerAuth
// @Param        id path string true "Id do usuário"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errInvalidIDText)
		return
	}

	err = h.s.DeleteUser(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao excluir usuário")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
