package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"slices"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/pkg/config"
	"github.com/samandr77/microservices/alvaras/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"
	maxRequestIDLen = 64
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, accessToken string) (entity.User, error)
}

type Middleware struct {
	cfg    config.Config
	tokens TokenValidator
}

func NewMiddleware(cfg config.Config, tokens TokenValidator) *Middleware {
	return &Middleware{
		cfg:    cfg,
		tokens: tokens,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.Must(uuid.NewV4()).String()
		}

		w.Header().Set(requestIDHeader, reqID)

		ctx := logger.SetRequestID(r.Context(), reqID)

		headers := ""

		for k, v := range r.Header {
			if k == "Authorization" || k == "Cookie" {
				continue
			}

			headers += fmt.Sprintf("%s: %s,\n", k, v)
		}

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.String(), "headers", headers, "user_ip", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			rec := recover()
			if rec != nil {
				slog.ErrorContext(ctx, "panic", "error", rec, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), errInternalText)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		switch {
		case origin == "":
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case len(m.cfg.CORSOrigins) == 0 || slices.Contains(m.cfg.CORSOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")
		w.Header().Set("Access-Control-Expose-Headers", "Retry-After, Content-Disposition")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		ctx := entity.SetIPToContext(r.Context(), ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Token ausente no cabeçalho")
			return
		}

		user, err := m.tokens.ValidateToken(ctx, accessToken)
		if err != nil {
			if errors.Is(err, entity.ErrTokenExpired) {
				SendErr(ctx, w, http.StatusUnauthorized, err, "Sessão expirada")
				return
			}

			SendErr(ctx, w, http.StatusUnauthorized, err, "Token inválido")

			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := entity.UserFromContext(ctx)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, errUnauthorizedTxt)
			return
		}

		if !user.IsAdmin() {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "Acesso restrito a administradores")
			return
		}

		next.ServeHTTP(w, r)
	})
}
