package api_test

import (
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/api"
	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestHandler_CreateCompany(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	in := entity.CompanyInput{
		CNPJ:        "11.222.333/0001-81",
		LegalName:   "Padaria Pão Quente LTDA",
		State:       "SP",
		City:        "Campinas",
		PermitTypes: []entity.PermitType{entity.PermitTypeOperating},
	}

	a.svc.EXPECT().CreateCompany(gomock.Any(), in).Return(entity.Company{
		ID:          uuid.Must(uuid.NewV4()),
		CNPJ:        "11222333000181",
		LegalName:   in.LegalName,
		PermitTypes: in.PermitTypes,
	}, nil)

	resp := a.do(t, http.MethodPost, "/api/clientes", userToken, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	c := decode[entity.Company](t, resp)
	require.Equal(t, "11222333000181", c.CNPJ)
}

func TestHandler_CreateCompany_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "duplicate cnpj", err: entity.ErrAlreadyExists, wantCode: http.StatusConflict},
		{name: "invalid cnpj", err: entity.NewValidationError(entity.ErrInvalidCNPJ, "cnpj", "CNPJ inválido"), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)

			a.svc.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).Return(entity.Company{}, tt.err)

			resp := a.do(t, http.MethodPost, "/api/clientes", userToken, entity.CompanyInput{CNPJ: "123"})
			require.Equal(t, tt.wantCode, resp.StatusCode)

			body := decode[api.ResponseError](t, resp)
			require.NotEmpty(t, body.Message)
		})
	}
}

func TestHandler_CompanyByCNPJ(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	a.svc.EXPECT().CompanyByCNPJ(gomock.Any(), "11222333000181").Return(entity.Company{}, entity.ErrNotFound)

	resp := a.do(t, http.MethodGet, "/api/clientes/search/cnpj/11222333000181", userToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Activities(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	companyID := uuid.Must(uuid.NewV4())

	in := entity.ActivityInput{Code: "47.21-1-02", Description: "Padaria e confeitaria"}

	a.svc.EXPECT().CreateActivity(gomock.Any(), companyID, in).Return(entity.Activity{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   companyID,
		Code:        in.Code,
		Description: in.Description,
	}, nil)

	resp := a.do(t, http.MethodPost, "/api/atividades-secundarias/"+companyID.String(), userToken, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	a.svc.EXPECT().Activities(gomock.Any(), companyID).Return([]entity.Activity{{Code: in.Code}}, nil)

	resp = a.do(t, http.MethodGet, "/api/atividades-secundarias/cliente/"+companyID.String(), userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[[]entity.Activity](t, resp), 1)
}

func TestHandler_CreateActivity_Duplicate(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	companyID := uuid.Must(uuid.NewV4())
	in := entity.ActivityInput{Code: "47.21-1-02", Description: "Padaria e confeitaria"}

	a.svc.EXPECT().CreateActivity(gomock.Any(), companyID, in).Return(entity.Activity{}, entity.ErrAlreadyExists)

	resp := a.do(t, http.MethodPost, "/api/atividades-secundarias/"+companyID.String(), userToken, in)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}
