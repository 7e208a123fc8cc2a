package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

const (
	errInternalText    = "Erro interno do servidor"
	errBadRequestText  = "Requisição inválida"
	errInvalidIDText   = "Identificador inválido"
	errUnauthorizedTxt = "Não autorizado"
)

type ResponseError struct {
	Message    string            `json:"message"`
	Error      string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`
	RetryAfter int               `json:"retryAfter,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	sendErr(ctx, w, code, err, ResponseError{Message: msg})
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, resp ResponseError) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	resp.Error = err.Error()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps domain errors to a status code and a pt-BR message.
// msg is used when nothing more specific applies.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var (
		rlErr  *entity.RateLimitError
		valErr *entity.ValidationError
	)

	switch {
	case errors.As(err, &rlErr):
		w.Header().Set("Retry-After", strconv.Itoa(rlErr.RetryAfter))
		sendErr(ctx, w, http.StatusTooManyRequests, err, ResponseError{Message: rlErr.Error(), RetryAfter: rlErr.RetryAfter})
	case errors.As(err, &valErr):
		sendErr(ctx, w, http.StatusBadRequest, err, ResponseError{Message: firstMessage(valErr), Fields: valErr.Fields})
	case errors.Is(err, entity.ErrRegistryTimeout):
		SendErr(ctx, w, http.StatusGatewayTimeout, err, "Timeout - CNPJ não encontrado ou não disponível no momento")
	case errors.Is(err, entity.ErrRegistryNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "CNPJ não encontrado ou inativo")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Registro não encontrado")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, "Registro já existe")
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Acesso negado")
	case errors.Is(err, entity.ErrInvalidCredentials):
		SendErr(ctx, w, http.StatusUnauthorized, err, "E-mail ou senha inválidos")
	case errors.Is(err, entity.ErrTokenExpired):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Sessão expirada")
	case errors.Is(err, entity.ErrUnauthorized), errors.Is(err, entity.ErrInvalidToken):
		SendErr(ctx, w, http.StatusUnauthorized, err, errUnauthorizedTxt)
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

func firstMessage(e *entity.ValidationError) string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	if len(keys) == 0 {
		return errBadRequestText
	}

	return e.Fields[keys[0]]
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.FromString(chi.URLParam(r, name))
}

// parseDate accepts a bare date or an RFC 3339 timestamp.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil //nolint:nilnil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err == nil {
		return &t, nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
