package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/api"
	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	a.svc.EXPECT().Login(gomock.Any(), "user@example.com", "secret123").
		Return(entity.AuthResult{User: a.user, Token: "jwt"}, nil)

	resp := a.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: "user@example.com", Password: "secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[entity.AuthResult](t, resp)
	require.Equal(t, "jwt", res.Token)
	require.Equal(t, a.user.ID, res.User.ID)
}

func TestHandler_Login_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantMsg    string
		wantRetry  int
		wantHeader string
	}{
		{
			name:       "too many attempts",
			err:        &entity.RateLimitError{RetryAfter: 840, Err: entity.ErrTooManyAttempts},
			wantCode:   http.StatusTooManyRequests,
			wantMsg:    "Muitas tentativas de login. Tente novamente em 840 segundos.",
			wantRetry:  840,
			wantHeader: "840",
		},
		{
			name:     "invalid credentials",
			err:      entity.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "E-mail ou senha inválidos",
		},
		{
			name:     "empty fields",
			err:      entity.NewValidationError(entity.ErrIncorrectRequestBody, "email", "E-mail e senha são obrigatórios"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "E-mail e senha são obrigatórios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewTestAPI(t)

			a.svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.AuthResult{}, tt.err)

			resp := a.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: "user@example.com"})
			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantHeader, resp.Header.Get("Retry-After"))

			body := decode[api.ResponseError](t, resp)
			require.Equal(t, tt.wantMsg, body.Message)
			require.Equal(t, tt.wantRetry, body.RetryAfter)
			require.NotEmpty(t, body.Error)
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	a.svc.EXPECT().Register(gomock.Any(), "new@example.com", "secret123", "Maria Silva").
		Return(entity.AuthResult{User: entity.User{Email: "new@example.com", Role: entity.RoleAdmin}, Token: "jwt"}, nil)

	resp := a.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
		FullName: "Maria Silva",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	res := decode[entity.AuthResult](t, resp)
	require.Equal(t, entity.RoleAdmin, res.User.Role)
}

func TestHandler_Register_Duplicate(t *testing.T) {
	t.Parallel()

	a := NewTestAPI(t)

	a.svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.AuthResult{}, entity.ErrAlreadyExists)

	resp := a.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{Email: "dup@example.com", Password: "secret123"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}
