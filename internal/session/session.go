// Package session holds the signed-in user and token of the console client.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=session.go -destination=../mocks/session.go -package=mocks -typed

type Authenticator interface {
	Login(ctx context.Context, email, password string) (entity.AuthResult, error)
	Register(ctx context.Context, email, password, fullName string) (entity.AuthResult, error)
}

type StateStorage interface {
	Load() (State, error)
	Save(state State) error
	Clear() error
}

// State is what survives a restart.
type State struct {
	User      entity.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (s State) valid(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}

type Session struct {
	auth    Authenticator
	storage StateStorage
	ttl     time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	state State
}

func New(auth Authenticator, storage StateStorage, ttl time.Duration, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}

	return &Session{
		auth:    auth,
		storage: storage,
		ttl:     ttl,
		now:     now,
	}
}

// Hydrate restores the persisted session. Corrupt or expired state is
// discarded.
func (s *Session) Hydrate() {
	state, err := s.storage.Load()
	if err != nil {
		slog.Warn("discard stored session", "error", err)
		s.clearStorage()

		return
	}

	if state.Token == "" {
		return
	}

	if !state.valid(s.now()) {
		slog.Info("stored session expired", "expires_at", state.ExpiresAt)
		s.clearStorage()

		return
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Session) Login(ctx context.Context, email, password string) (entity.User, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return entity.User{}, entity.NewValidationError(entity.ErrIncorrectRequestBody, "email", "E-mail e senha são obrigatórios")
	}

	if !strings.Contains(email, "@") {
		return entity.User{}, entity.NewValidationError(entity.ErrIncorrectRequestBody, "email", "E-mail inválido")
	}

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return entity.User{}, err
	}

	return s.start(res)
}

func (s *Session) Register(ctx context.Context, email, password, fullName string) (entity.User, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return entity.User{}, entity.NewValidationError(entity.ErrIncorrectRequestBody, "email", "E-mail e senha são obrigatórios")
	}

	if !strings.Contains(email, "@") {
		return entity.User{}, entity.NewValidationError(entity.ErrIncorrectRequestBody, "email", "E-mail inválido")
	}

	if pv := service.ValidatePassword(password); !pv.IsValid {
		return entity.User{}, entity.NewValidationError(entity.ErrIncorrectRequestBody, "password", strings.Join(pv.Errors, "\n"))
	}

	res, err := s.auth.Register(ctx, email, password, strings.TrimSpace(fullName))
	if err != nil {
		return entity.User{}, err
	}

	return s.start(res)
}

func (s *Session) start(res entity.AuthResult) (entity.User, error) {
	if res.Token == "" {
		return entity.User{}, errors.New("empty token in auth response")
	}

	state := State{
		User:      res.User,
		Token:     res.Token,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	err := s.storage.Save(state)
	if err != nil {
		return res.User, fmt.Errorf("save session: %w", err)
	}

	return res.User, nil
}

func (s *Session) Logout() error {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()

	err := s.storage.Clear()
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *Session) current() (State, bool) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	return state, state.valid(s.now())
}

// User returns the signed-in user or entity.ErrSessionExpired.
func (s *Session) User() (entity.User, error) {
	state, ok := s.current()
	if !ok {
		return entity.User{}, entity.ErrSessionExpired
	}

	return state.User, nil
}

// Token is empty when nobody is signed in or the session expired.
func (s *Session) Token() string {
	state, ok := s.current()
	if !ok {
		return ""
	}

	return state.Token
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.current()
	return ok
}

func (s *Session) ExpiresAt() time.Time {
	state, _ := s.current()
	return state.ExpiresAt
}

func (s *Session) clearStorage() {
	err := s.storage.Clear()
	if err != nil {
		slog.Error("clear stored session", "error", err)
	}
}
