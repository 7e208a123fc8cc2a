package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/alvaras/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/auth/register", h.Register)
			r.Post("/auth/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/clientes", h.Companies)
			r.Post("/clientes", h.CreateCompany)
			r.Get("/clientes/search/cnpj/{cnpj}", h.CompanyByCNPJ)
			r.Get("/clientes/{id}", h.Company)
			r.Put("/clientes/{id}", h.UpdateCompany)
			r.Delete("/clientes/{id}", h.DeleteCompany)

			r.Get("/alvaras", h.Permits)
			r.Post("/alvaras", h.CreatePermit)
			r.Get("/alvaras/opcoes", h.PermitOptions)
			r.Get("/alvaras/cliente/{clienteId}", h.PermitsByCompany)
			r.Get("/alvaras/{id}", h.Permit)
			r.Put("/alvaras/{id}", h.UpdatePermit)
			r.Delete("/alvaras/{id}", h.DeletePermit)

			r.Get("/atividades-secundarias/cliente/{clienteId}", h.Activities)
			r.Post("/atividades-secundarias/{id}", h.CreateActivity)
			r.Delete("/atividades-secundarias/{id}", h.DeleteActivity)

			r.Get("/documentos-cliente/cliente/{clienteId}", h.Documents)
			r.Post("/documentos-cliente/upload/{clienteId}", h.UploadDocument)
			r.Get("/documentos-cliente/download/{id}", h.DownloadDocument)
			r.Delete("/documentos-cliente/{id}", h.DeleteDocument)

			r.Get("/cnpj/{cnpj}", h.LookupCNPJ)
			r.Get("/cidades/{uf}", h.Cities)

			r.With(mw.AdminOnly).Get("/users", h.Users)
			r.With(mw.AdminOnly).Delete("/users/{id}", h.DeleteUser)
		})
	})

	return router
}
