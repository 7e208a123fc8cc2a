package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/pkg/config"
	"github.com/samandr77/microservices/alvaras/pkg/transport"
)

const defaultRetryAfter = 60

type TokenSource = transport.TokenSource

// Client talks to the alvarás HTTP API. Payloads are decoded into entity
// types here and nowhere else.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.Console, tokens TokenSource) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewTokenRoundTripper(http.DefaultTransport, tokens)

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http:    retryClient.StandardClient(),
	}
}

// errorBody mirrors the API error payload.
type errorBody struct {
	Message    string            `json:"message"`
	Error      string            `json:"error"`
	Fields     map[string]string `json:"fields"`
	RetryAfter int               `json:"retryAfter"`
}

// Error is a non-2xx API answer that maps to no more specific error type.
// Message is the server's pt-BR text.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinels recognised in the "error" field, most specific first.
var knownErrors = []error{
	entity.ErrRegistryNotFound,
	entity.ErrRegistryTimeout,
	entity.ErrInvalidCredentials,
	entity.ErrTokenExpired,
	entity.ErrInvalidToken,
	entity.ErrPermitTypeNotAllowed,
	entity.ErrInvalidCNPJ,
	entity.ErrExpirationRequired,
	entity.ErrAlreadyExists,
	entity.ErrForbidden,
	entity.ErrUnauthorized,
	entity.ErrNotFound,
}

var statusErrors = map[int]error{
	http.StatusUnauthorized:          entity.ErrUnauthorized,
	http.StatusForbidden:             entity.ErrForbidden,
	http.StatusNotFound:              entity.ErrNotFound,
	http.StatusConflict:              entity.ErrAlreadyExists,
	http.StatusGatewayTimeout:        entity.ErrRegistryTimeout,
	http.StatusRequestEntityTooLarge: entity.ErrIncorrectRequestBody,
}

func sentinel(status int, text string) error {
	for _, err := range knownErrors {
		if strings.Contains(text, err.Error()) {
			return err
		}
	}

	return statusErrors[status]
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		body.Message = strings.TrimSpace(string(raw))
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		retryAfter := body.RetryAfter
		if retryAfter <= 0 {
			retryAfter = headerRetryAfter(resp.Header.Get("Retry-After"))
		}

		return &entity.RateLimitError{RetryAfter: retryAfter, Err: entity.ErrTooManyAttempts}
	case http.StatusBadRequest:
		base := sentinel(resp.StatusCode, body.Error)
		if base == nil {
			base = entity.ErrIncorrectRequestBody
		}

		if len(body.Fields) > 0 {
			return &entity.ValidationError{Fields: body.Fields, Err: base}
		}

		return entity.NewValidationError(base, "body", body.Message)
	}

	return &Error{
		StatusCode: resp.StatusCode,
		Message:    body.Message,
		Err:        sentinel(resp.StatusCode, body.Error),
	}
}

func headerRetryAfter(header string) int {
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}

	return seconds
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return req, nil
}

// send executes req and decodes a successful JSON answer into out.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader

	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func isRateLimited(err error) (*entity.RateLimitError, bool) {
	var rlErr *entity.RateLimitError
	ok := errors.As(err, &rlErr)

	return rlErr, ok
}
