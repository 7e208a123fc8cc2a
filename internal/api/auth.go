package api

import (
	"encoding/json"
	"net/http"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Cadastro de usuário
// @Description  O primeiro usuário cadastrado recebe o papel admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Dados do usuário"
// @Success      201 {object} entity.AuthResult
// @Failure      400 {object} ResponseError
// @Failure      409 {object} ResponseError "E-mail já cadastrado"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	res, err := h.s.Register(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao registrar")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, res)
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciais"
// @Success      200 {object} entity.AuthResult
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError "E-mail ou senha inválidos"
// @Failure      429 {object} ResponseError "Muitas tentativas de login"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	res, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao fazer login")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
