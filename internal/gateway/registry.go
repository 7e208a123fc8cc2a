package gateway

import (
	"context"
	"net/url"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Registry struct {
	c *Client
}

func NewRegistry(c *Client) *Registry {
	return &Registry{c: c}
}

// Lookup queries the tax registry through the API. A 429 answer comes back
// as *entity.RateLimitError wrapping entity.ErrRegistryRateLimited.
func (g *Registry) Lookup(ctx context.Context, cnpj string) (entity.RegistryCompany, error) {
	var company entity.RegistryCompany

	err := g.c.get(ctx, "/cnpj/"+url.PathEscape(cnpj), nil, &company)
	if rlErr, ok := isRateLimited(err); ok {
		rlErr.Err = entity.ErrRegistryRateLimited
		return entity.RegistryCompany{}, rlErr
	}

	return company, err
}

func (g *Registry) Cities(ctx context.Context, uf string) ([]entity.City, error) {
	var cities []entity.City

	err := g.c.get(ctx, "/cidades/"+url.PathEscape(uf), nil, &cities)
	if err != nil {
		return nil, err
	}

	return cities, nil
}
