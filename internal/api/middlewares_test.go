package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/api"
	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/pkg/config"
	"github.com/samandr77/microservices/alvaras/pkg/logger"
)

func TestMiddleware_Auth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		wantCode int
		wantMsg  string
	}{
		{name: "missing token", wantCode: http.StatusUnauthorized, wantMsg: "Token ausente no cabeçalho"},
		{name: "invalid token", token: "garbage", wantCode: http.StatusUnauthorized, wantMsg: "Token inválido"},
		{name: "expired token", token: "expired", wantCode: http.StatusUnauthorized, wantMsg: "Sessão expirada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)

			resp := a.do(t, http.MethodGet, "/api/clientes", tt.token, nil)
			require.Equal(t, tt.wantCode, resp.StatusCode)

			body := decode[api.ResponseError](t, resp)
			require.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestMiddleware_PublicRoutes(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_AdminOnly(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/users", userToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	a.svc.EXPECT().Users(gomock.Any()).Return([]entity.User{a.admin, a.user}, nil)

	resp = a.do(t, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := decode[[]entity.User](t, resp)
	require.Len(t, users, 2)
}

func TestMiddleware_DeleteOwnUser(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	a.svc.EXPECT().DeleteUser(gomock.Any(), a.admin.ID).Return(entity.ErrForbidden)

	resp := a.do(t, http.MethodDelete, "/api/users/"+a.admin.ID.String(), adminToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	other := uuid.Must(uuid.NewV4())
	a.svc.EXPECT().DeleteUser(gomock.Any(), other).Return(nil)

	resp = a.do(t, http.MethodDelete, "/api/users/"+other.String(), adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestMiddleware_Recover(t *testing.T) {
	t.Parallel()

	mw := api.NewMiddleware(config.Config{}, tokenStub{})

	h := mw.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "boom")
}

func TestMiddleware_LogRequestID(t *testing.T) {
	t.Parallel()

	mw := api.NewMiddleware(config.Config{}, tokenStub{})

	var got string

	h := mw.Log(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = logger.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "console-42")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "console-42", got)
	require.Equal(t, "console-42", rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.FromString(got)
	require.NoError(t, err)
	require.Equal(t, got, rec.Header().Get("X-Request-Id"))
}

func TestMiddleware_Cors(t *testing.T) {
	t.Parallel()

	mw := api.NewMiddleware(config.Config{CORSOrigins: []string{"http://app.local"}}, tokenStub{})

	h := mw.Cors(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantCode   int
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "http://app.local", wantOrigin: "http://app.local", wantCode: http.StatusTeapot},
		{name: "unknown origin", method: http.MethodGet, origin: "http://evil.local", wantCode: http.StatusTeapot},
		{name: "preflight", method: http.MethodOptions, origin: "http://app.local", wantOrigin: "http://app.local", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			require.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Retry-After")
		})
	}
}
