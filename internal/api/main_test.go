package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/api"
	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/mocks"
	"github.com/samandr77/microservices/alvaras/pkg/config"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

type tokenStub map[string]entity.User

func (s tokenStub) ValidateToken(_ context.Context, token string) (entity.User, error) {
	if token == "expired" {
		return entity.User{}, entity.ErrTokenExpired
	}

	user, ok := s[token]
	if !ok {
		return entity.User{}, entity.ErrInvalidToken
	}

	return user, nil
}

type TestAPI struct {
	srv   *httptest.Server
	svc   *mocks.MockService
	user  entity.User
	admin entity.User
}

func NewTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Email: "user@example.com", Role: entity.RoleUser}
	admin := entity.User{ID: uuid.Must(uuid.NewV4()), Email: "admin@example.com", Role: entity.RoleAdmin}

	tokens := tokenStub{userToken: user, adminToken: admin}

	h := api.NewHandler(svc, 1<<20)
	mw := api.NewMiddleware(config.Config{}, tokens)

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return &TestAPI{srv: srv, svc: svc, user: user, admin: admin}
}

func (a *TestAPI) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, a.srv.URL+path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T

	err := json.NewDecoder(resp.Body).Decode(&v)
	require.NoError(t, err)

	return v
}
