package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/mocks"
	"github.com/samandr77/microservices/alvaras/internal/session"
)

type TestSession struct {
	s       *session.Session
	auth    *mocks.MockAuthenticator
	storage *session.FileStorage
	path    string
	now     *time.Time
}

func NewTestSession(t *testing.T) *TestSession {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)

	path := filepath.Join(t.TempDir(), "session.json")
	storage := session.NewFileStorage(path)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ts := &TestSession{auth: auth, storage: storage, path: path, now: &now}
	ts.s = session.New(auth, storage, time.Hour, func() time.Time { return *ts.now })

	return ts
}

func TestSession_Login(t *testing.T) {
	t.Parallel()

	ts := NewTestSession(t)
	user := entity.User{ID: uuid.Must(uuid.NewV4()), Email: "ana@example.com"}

	ts.auth.EXPECT().Login(gomock.Any(), "ana@example.com", "Secret1!").
		Return(entity.AuthResult{User: user, Token: "jwt"}, nil)

	got, err := ts.s.Login(context.Background(), " ana@example.com ", "Secret1!")
	require.NoError(t, err)
	require.Equal(t, user, got)
	require.True(t, ts.s.IsAuthenticated())
	require.Equal(t, "jwt", ts.s.Token())

	state, err := ts.storage.Load()
	require.NoError(t, err)
	require.Equal(t, "jwt", state.Token)
	require.Equal(t, time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC), state.ExpiresAt)
}

func TestSession_Login_ClientValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantMsg  string
	}{
		{name: "empty email", password: "x", wantMsg: "E-mail e senha são obrigatórios"},
		{name: "empty password", email: "ana@example.com", wantMsg: "E-mail e senha são obrigatórios"},
		{name: "missing at", email: "ana.example.com", password: "x", wantMsg: "E-mail inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := NewTestSession(t)

			_, err := ts.s.Login(context.Background(), tt.email, tt.password)

			var valErr *entity.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Equal(t, tt.wantMsg, valErr.Fields["email"])
			require.False(t, ts.s.IsAuthenticated())
		})
	}
}

func TestSession_Login_RemoteError(t *testing.T) {
	t.Parallel()

	ts := NewTestSession(t)
	rlErr := &entity.RateLimitError{RetryAfter: 600, Err: entity.ErrTooManyAttempts}

	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.AuthResult{}, rlErr)

	_, err := ts.s.Login(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, entity.ErrTooManyAttempts)
	require.Contains(t, err.Error(), "600 segundos")
	require.False(t, ts.s.IsAuthenticated())

	_, err = os.Stat(ts.path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSession_Register_PasswordPolicy(t *testing.T) {
	t.Parallel()

	ts := NewTestSession(t)

	_, err := ts.s.Register(context.Background(), "ana@example.com", "weak", "Ana")

	var valErr *entity.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Fields["password"], "pelo menos 8 caracteres")

	ts.auth.EXPECT().Register(gomock.Any(), "ana@example.com", "Str0ng!Pass", "Ana").
		Return(entity.AuthResult{User: entity.User{Email: "ana@example.com", Role: entity.RoleAdmin}, Token: "jwt"}, nil)

	user, err := ts.s.Register(context.Background(), "ana@example.com", "Str0ng!Pass", " Ana ")
	require.NoError(t, err)
	require.True(t, user.IsAdmin())
}

func TestSession_Expiry(t *testing.T) {
	t.Parallel()

	ts := NewTestSession(t)

	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.AuthResult{User: entity.User{Email: "ana@example.com"}, Token: "jwt"}, nil)

	_, err := ts.s.Login(context.Background(), "ana@example.com", "Secret1!")
	require.NoError(t, err)

	*ts.now = ts.now.Add(59 * time.Minute)
	require.True(t, ts.s.IsAuthenticated())

	*ts.now = ts.now.Add(time.Minute)
	require.False(t, ts.s.IsAuthenticated())
	require.Empty(t, ts.s.Token())

	_, err = ts.s.User()
	require.ErrorIs(t, err, entity.ErrSessionExpired)
}

func TestSession_Hydrate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	user := entity.User{ID: uuid.Must(uuid.NewV4()), Email: "ana@example.com"}

	tests := []struct {
		name      string
		prepare   func(t *testing.T, path string)
		wantAuth  bool
		wantFiles bool
	}{
		{
			name:     "no file",
			prepare:  func(*testing.T, string) {},
			wantAuth: false,
		},
		{
			name: "valid state",
			prepare: func(t *testing.T, path string) {
				err := session.NewFileStorage(path).Save(session.State{User: user, Token: "jwt", ExpiresAt: now.Add(30 * time.Minute)})
				require.NoError(t, err)
			},
			wantAuth:  true,
			wantFiles: true,
		},
		{
			name: "expired state",
			prepare: func(t *testing.T, path string) {
				err := session.NewFileStorage(path).Save(session.State{User: user, Token: "jwt", ExpiresAt: now.Add(-time.Minute)})
				require.NoError(t, err)
			},
		},
		{
			name: "corrupt file",
			prepare: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "session.json")
			tt.prepare(t, path)

			s := session.New(nil, session.NewFileStorage(path), time.Hour, func() time.Time { return now })
			s.Hydrate()

			require.Equal(t, tt.wantAuth, s.IsAuthenticated())

			_, err := os.Stat(path)
			require.Equal(t, tt.wantFiles, err == nil)

			if tt.wantAuth {
				got, err := s.User()
				require.NoError(t, err)
				require.Equal(t, user.ID, got.ID)
			}
		})
	}
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()

	ts := NewTestSession(t)

	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.AuthResult{Token: "jwt"}, nil)

	_, err := ts.s.Login(context.Background(), "ana@example.com", "Secret1!")
	require.NoError(t, err)

	require.NoError(t, ts.s.Logout())
	require.False(t, ts.s.IsAuthenticated())

	_, err = os.Stat(ts.path)
	require.True(t, errors.Is(err, os.ErrNotExist))

	require.NoError(t, ts.s.Logout())
}
