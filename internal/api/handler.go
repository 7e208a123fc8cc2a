package api

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks -typed

type Service interface {
	CreateCompany(ctx context.Context, in entity.CompanyInput) (entity.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, in entity.CompanyInput) (entity.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	Company(ctx context.Context, id uuid.UUID) (entity.Company, error)
	Companies(ctx context.Context) ([]entity.Company, error)
	CompanyByCNPJ(ctx context.Context, cnpj string) (entity.Company, error)

	CreatePermit(ctx context.Context, in entity.PermitInput) (entity.Permit, error)
	UpdatePermit(ctx context.Context, id uuid.UUID, in entity.PermitInput) (entity.Permit, error)
	DeletePermit(ctx context.Context, id uuid.UUID) error
	Permit(ctx context.Context, id uuid.UUID) (entity.Permit, error)
	Permits(ctx context.Context, filter entity.PermitsFilter) ([]entity.Permit, error)
	PermitsByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Permit, error)

	Activities(ctx context.Context, companyID uuid.UUID) ([]entity.Activity, error)
	CreateActivity(ctx context.Context, companyID uuid.UUID, in entity.ActivityInput) (entity.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	Documents(ctx context.Context, companyID uuid.UUID) ([]entity.Document, error)
	UploadDocument(ctx context.Context, companyID uuid.UUID, in entity.DocumentInput) (entity.Document, error)
	DownloadDocument(ctx context.Context, id uuid.UUID) (entity.DownloadedDocument, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error

	LookupCNPJ(ctx context.Context, cnpj string) (entity.RegistryCompany, error)
	Cities(ctx context.Context, uf string) ([]entity.City, error)

	Register(ctx context.Context, email, password, fullName string) (entity.AuthResult, error)
	Login(ctx context.Context, email, password string) (entity.AuthResult, error)
	Users(ctx context.Context) ([]entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// @title Alvarás API
// @version 1.0
// @description API de controle de clientes, alvarás e documentos.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s             Service
	maxUploadSize int64
}

func NewHandler(s Service, maxUploadSize int64) *Handler {
	return &Handler{
		s:             s,
		maxUploadSize: maxUploadSize,
	}
}

// Health godoc
// @Summary      Verificação do serviço
// @Description  Retorna o status de funcionamento do serviço
// @Tags         health
// @Success      200 {string} string "Serviço funcionando!"
// @Failure      500 {object} ResponseError "Serviço indisponível"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Serviço funcionando!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Serviço indisponível")
	}
}
