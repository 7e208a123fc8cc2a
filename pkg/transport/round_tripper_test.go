package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/pkg/logger"
	"github.com/samandr77/microservices/alvaras/pkg/transport"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestTokenRoundTripper_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		reqID     string
		wantAuth  string
		wantReqID string
	}{
		{name: "token and request id", token: "abc", reqID: "req-1", wantAuth: "Bearer abc", wantReqID: "req-1"},
		{name: "anonymous", token: "", wantAuth: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			headers := make(chan http.Header, 1)

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				headers <- r.Header.Clone()
				w.WriteHeader(http.StatusNoContent)
			}))
			t.Cleanup(server.Close)

			client := &http.Client{
				Timeout:   10 * time.Second,
				Transport: transport.NewTokenRoundTripper(http.DefaultTransport, staticToken(tt.token)),
			}

			ctx := context.Background()
			if tt.reqID != "" {
				ctx = logger.SetRequestID(ctx, tt.reqID)
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusNoContent, resp.StatusCode)

			got := <-headers
			require.Equal(t, tt.wantAuth, got.Get("Authorization"))
			require.Equal(t, tt.wantReqID, got.Get("X-Request-Id"))
		})
	}
}

func TestTokenRoundTripper_KeepsExplicitAuthorization(t *testing.T) {
	t.Parallel()

	auth := make(chan string, 1)

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
	}))
	t.Cleanup(server.Close)

	client := &http.Client{Transport: transport.NewTokenRoundTripper(http.DefaultTransport, staticToken("session"))}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer explicit")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "Bearer explicit", <-auth)
}
