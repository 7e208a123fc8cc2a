package receitaws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/pkg/config"
)

const (
	statusOK          = "OK"
	defaultRetryAfter = 60
)

// Client looks companies up in ReceitaWS. The public API allows a few
// requests per minute, so calls are throttled locally before hitting it.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

func NewClient(cfg config.Registry) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	perMinute := max(cfg.RequestsPerMin, 1)

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

type response struct {
	entity.RegistryCompany
	Message string `json:"message"`
}

func (c *Client) Lookup(ctx context.Context, cnpj string) (entity.RegistryCompany, error) {
	reservation := c.limiter.Reserve()
	if delay := reservation.Delay(); delay > 0 {
		reservation.Cancel()

		return entity.RegistryCompany{}, &entity.RateLimitError{
			RetryAfter: int(math.Ceil(delay.Seconds())),
			Err:        entity.ErrRegistryRateLimited,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/cnpj/%s", c.baseURL, cnpj), nil)
	if err != nil {
		return entity.RegistryCompany{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return entity.RegistryCompany{}, fmt.Errorf("%w: %w", entity.ErrRegistryTimeout, err)
		}

		return entity.RegistryCompany{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return entity.RegistryCompany{}, &entity.RateLimitError{
			RetryAfter: retryAfter(resp.Header.Get("Retry-After")),
			Err:        entity.ErrRegistryRateLimited,
		}
	case http.StatusGatewayTimeout:
		return entity.RegistryCompany{}, entity.ErrRegistryTimeout
	case http.StatusNotFound:
		return entity.RegistryCompany{}, entity.ErrRegistryNotFound
	default:
		return entity.RegistryCompany{}, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var body response

	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return entity.RegistryCompany{}, fmt.Errorf("decode response: %w", err)
	}

	if body.Status != statusOK {
		return entity.RegistryCompany{}, fmt.Errorf("%w: %s", entity.ErrRegistryNotFound, body.Message)
	}

	company := body.RegistryCompany
	company.CNPJ = cnpj

	return company, nil
}

func retryAfter(header string) int {
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}

	return seconds
}
