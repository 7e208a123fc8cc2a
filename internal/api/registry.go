package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// LookupCNPJ godoc
// @Summary      Consulta de CNPJ na Receita
// @Description  Limitado a 3 consultas por minuto. Resultados ficam em cache.
// @Tags         cnpj
// @Produce      json
// @Security     BearerAuth
// @Param        cnpj path string true "CNPJ com ou sem máscara"
// @Success      200 {object} entity.RegistryCompany
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError "CNPJ não encontrado ou inativo"
// @Failure      429 {object} ResponseError "Limite de requisições excedido"
// @Failure      504 {object} ResponseError "Timeout"
// @Router       /cnpj/{cnpj} [get]
func (h *Handler) LookupCNPJ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, err := h.s.LookupCNPJ(ctx, chi.URLParam(r, "cnpj"))
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao consultar CNPJ")
		return
	}

	SendJSON(ctx, w, http.StatusOK, company)
}

// Cities godoc
// @Summary      Municípios de uma UF
// @Tags         cidades
// @Produce      json
// @Security     BearerAuth
// @Param        uf path string true "Sigla da UF"
// @Success      200 {array} entity.City
// @Failure      400 {object} ResponseError
// @Router       /cidades/{uf} [get]
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cities, err := h.s.Cities(ctx, chi.URLParam(r, "uf"))
	if err != nil {
		SendServiceErr(ctx, w, err, "Erro ao carregar cidades")
		return
	}

	SendJSON(ctx, w, http.StatusOK, cities)
}
