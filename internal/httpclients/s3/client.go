package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

const timeout = time.Second * 30

// Client stores document files in an S3-compatible bucket exposed over plain
// HTTP (presigned gateway or minio with a static token).
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

func (c *Client) Type() entity.StorageType {
	return entity.StorageTypeCloud
}

func (c *Client) Save(ctx context.Context, key string, r io.Reader, size int64, mime string) error {
	req, err := c.newRequest(ctx, http.MethodPut, key, r)
	if err != nil {
		return err
	}

	req.ContentLength = size
	if mime != "" {
		req.Header.Set("Content-Type", mime)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, entity.ErrNotFound
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}
}

func (c *Client) Remove(ctx context.Context, key string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, key, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	// deleting a missing object is not an error
	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, key string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+url.PathEscape(key), body)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}
