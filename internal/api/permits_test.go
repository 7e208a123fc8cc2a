package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/api"
	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestHandler_Permits_Filter(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	want := entity.PermitsFilter{
		Search:   "padaria",
		Types:    []entity.PermitType{entity.PermitTypeSanitary, entity.PermitTypeOperating},
		Statuses: []entity.PermitStatus{entity.PermitStatusExpiring},
	}

	a.svc.EXPECT().Permits(gomock.Any(), want).Return([]entity.Permit{{ID: uuid.Must(uuid.NewV4())}}, nil)

	path := "/api/alvaras?search=padaria&tipo=Alvar%C3%A1+Sanit%C3%A1rio&tipo=Alvar%C3%A1+de+Funcionamento&status=expiring"

	resp := a.do(t, http.MethodGet, path, userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[[]entity.Permit](t, resp), 1)
}

func TestHandler_Permits_InvalidStatus(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/alvaras?status=unknown", userToken, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_PermitOptions(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/alvaras/opcoes", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	opts := decode[api.PermitOptionsResponse](t, resp)
	require.Equal(t, entity.PermitTypes, opts.Types)
	require.Len(t, opts.ProcessingStatus, 3)
}

func TestHandler_CreatePermit(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	companyID := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().CreatePermit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in entity.PermitInput) (entity.Permit, error) {
			return entity.Permit{
				ID:             uuid.Must(uuid.NewV4()),
				CompanyID:      in.CompanyID,
				Type:           in.Type,
				RequestDate:    in.RequestDate,
				IssueDate:      in.IssueDate,
				ExpirationDate: in.ExpirationDate,
				Status:         entity.PermitStatusValid,
			}, nil
		})

	resp := a.do(t, http.MethodPost, "/api/alvaras", userToken, api.PermitRequest{
		CompanyID:      companyID.String(),
		Type:           entity.PermitTypeOperating,
		RequestDate:    "2025-01-10",
		IssueDate:      "2025-02-01",
		ExpirationDate: "2026-02-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	p := decode[entity.Permit](t, resp)
	require.Equal(t, companyID, p.CompanyID)
	require.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), p.RequestDate)
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *p.ExpirationDate)
}

func TestHandler_CreatePermit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       api.PermitRequest
		svcErr    error
		wantField string
	}{
		{
			name:      "bad date",
			req:       api.PermitRequest{CompanyID: uuid.Must(uuid.NewV4()).String(), Type: entity.PermitTypeOperating, RequestDate: "10/01/2025"},
			wantField: "requestDate",
		},
		{
			name:      "bad company id",
			req:       api.PermitRequest{CompanyID: "abc", Type: entity.PermitTypeOperating, RequestDate: "2025-01-10"},
			wantField: "clienteId",
		},
		{
			name:      "type not allowed",
			req:       api.PermitRequest{CompanyID: uuid.Must(uuid.NewV4()).String(), Type: entity.PermitTypeSanitary, RequestDate: "2025-01-10"},
			svcErr:    entity.NewValidationError(entity.ErrPermitTypeNotAllowed, "type", "Tipo de alvará não permitido para este cliente"),
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)

			if tt.svcErr != nil {
				a.svc.EXPECT().CreatePermit(gomock.Any(), gomock.Any()).Return(entity.Permit{}, tt.svcErr)
			}

			resp := a.do(t, http.MethodPost, "/api/alvaras", userToken, tt.req)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decode[api.ResponseError](t, resp)
			require.Contains(t, body.Fields, tt.wantField)
			require.Equal(t, body.Fields[tt.wantField], body.Message)
		})
	}
}

func TestHandler_Permit_NotFound(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	id := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().Permit(gomock.Any(), id).Return(entity.Permit{}, entity.ErrNotFound)

	resp := a.do(t, http.MethodGet, "/api/alvaras/"+id.String(), userToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/alvaras/not-a-uuid", userToken, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_DeletePermit(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)
	id := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().DeletePermit(gomock.Any(), id).Return(nil)

	resp := a.do(t, http.MethodDelete, "/api/alvaras/"+id.String(), userToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}
