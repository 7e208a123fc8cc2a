package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/api"
	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestHandler_LookupCNPJ(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		company   entity.RegistryCompany
		err       error
		wantCode  int
		wantRetry string
	}{
		{
			name:     "found",
			company:  entity.RegistryCompany{CNPJ: "11222333000181", LegalName: "Padaria Pão Quente LTDA"},
			wantCode: http.StatusOK,
		},
		{
			name:      "rate limited",
			err:       &entity.RateLimitError{RetryAfter: 42, Err: entity.ErrRegistryRateLimited},
			wantCode:  http.StatusTooManyRequests,
			wantRetry: "42",
		},
		{name: "timeout", err: entity.ErrRegistryTimeout, wantCode: http.StatusGatewayTimeout},
		{name: "not found", err: entity.ErrRegistryNotFound, wantCode: http.StatusNotFound},
		{
			name:     "invalid cnpj",
			err:      entity.NewValidationError(entity.ErrInvalidCNPJ, "cnpj", "CNPJ inválido"),
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)

			a.svc.EXPECT().LookupCNPJ(gomock.Any(), "11.222.333-0001-81").Return(tt.company, tt.err)

			resp := a.do(t, http.MethodGet, "/api/cnpj/11.222.333-0001-81", userToken, nil)
			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantRetry, resp.Header.Get("Retry-After"))

			if tt.err == nil {
				require.Equal(t, tt.company, decode[entity.RegistryCompany](t, resp))
				return
			}

			body := decode[api.ResponseError](t, resp)
			require.NotEmpty(t, body.Message)
		})
	}
}

func TestHandler_Cities(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	cities := []entity.City{{ID: 3550308, Name: "São Paulo"}, {ID: 3509502, Name: "Campinas"}}
	a.svc.EXPECT().Cities(gomock.Any(), "sp").Return(cities, nil)

	resp := a.do(t, http.MethodGet, "/api/cidades/sp", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, cities, decode[[]entity.City](t, resp))
}
