package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/alvaras/pkg/logger"
)

type TokenSource interface {
	Token() string
}

// TokenRoundTripper logs outgoing requests and attaches the request id and
// the current bearer token.
type TokenRoundTripper struct {
	Transport http.RoundTripper
	Tokens    TokenSource
}

func NewTokenRoundTripper(transport http.RoundTripper, tokens TokenSource) *TokenRoundTripper {
	return &TokenRoundTripper{Transport: transport, Tokens: tokens}
}

func (t *TokenRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()
	r = r.Clone(ctx)

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	if t.Tokens != nil && r.Header.Get("Authorization") == "" {
		if token := t.Tokens.Token(); token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}

	slog.DebugContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.DebugContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "status", resp.StatusCode)

	return resp, nil
}
