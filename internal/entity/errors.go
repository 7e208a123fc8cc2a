package entity

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidCNPJ          = errors.New("invalid cnpj")
	ErrRegistryNotFound     = errors.New("cnpj not found or inactive")
	ErrRegistryRateLimited  = errors.New("registry rate limit exceeded")
	ErrRegistryTimeout      = errors.New("registry timeout")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrExpirationRequired   = errors.New("expiration date required")
	ErrPermitTypeNotAllowed = errors.New("permit type not allowed for company")
	ErrSessionExpired       = errors.New("session expired")
	ErrTooManyAttempts      = errors.New("too many login attempts")
)

// RateLimitError carries the retry delay announced by the server.
type RateLimitError struct {
	RetryAfter int
	Err        error
}

func (e *RateLimitError) Error() string {
	if errors.Is(e.Err, ErrRegistryRateLimited) {
		return fmt.Sprintf("Limite de requisições excedido (3 por minuto). Tente novamente em %d segundos.", e.RetryAfter)
	}

	return fmt.Sprintf("Muitas tentativas de login. Tente novamente em %d segundos.", e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

func (e *RateLimitError) RetryAfterDuration() time.Duration {
	return time.Duration(e.RetryAfter) * time.Second
}

// ValidationError maps field names to messages.
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func NewValidationError(err error, field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}, Err: err}
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}

	e.Fields[field] = msg
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}

	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}

	return ErrIncorrectRequestBody
}
