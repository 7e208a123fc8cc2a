package ibge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/pkg/config"
)

type state struct {
	ID   int    `json:"id"`
	Abbr string `json:"sigla"`
	Name string `json:"nome"`
}

// Client lists municipalities from the IBGE localidades API.
type Client struct {
	client  *http.Client
	baseURL string

	mu     sync.Mutex
	states map[string]int
}

func NewClient(cfg config.IBGE) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = nil

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Cities returns the municipalities of uf sorted in pt-BR order.
func (c *Client) Cities(ctx context.Context, uf string) ([]entity.City, error) {
	stateID, err := c.stateID(ctx, strings.ToUpper(strings.TrimSpace(uf)))
	if err != nil {
		return nil, err
	}

	var cities []entity.City

	err = c.get(ctx, fmt.Sprintf("%s/estados/%d/municipios", c.baseURL, stateID), &cities)
	if err != nil {
		return nil, fmt.Errorf("get municipios: %w", err)
	}

	valid := make([]entity.City, 0, len(cities))
	for _, city := range cities {
		if city.ID != 0 && city.Name != "" {
			valid = append(valid, city)
		}
	}

	SortCities(valid)

	return valid, nil
}

func (c *Client) stateID(ctx context.Context, uf string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.states == nil {
		var states []state

		err := c.get(ctx, c.baseURL+"/estados", &states)
		if err != nil {
			return 0, fmt.Errorf("get estados: %w", err)
		}

		c.states = make(map[string]int, len(states))
		for _, s := range states {
			c.states[s.Abbr] = s.ID
		}
	}

	id, ok := c.states[uf]
	if !ok {
		return 0, fmt.Errorf("estado %q: %w", uf, entity.ErrNotFound)
	}

	return id, nil
}

func (c *Client) get(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// SortCities orders by name ignoring case and accents.
func SortCities(cities []entity.City) {
	col := collate.New(language.BrazilianPortuguese, collate.Loose)

	slices.SortStableFunc(cities, func(a, b entity.City) int {
		return col.CompareString(a.Name, b.Name)
	})
}
