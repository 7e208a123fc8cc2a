package gateway

import (
	"context"
	"net/url"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Companies struct {
	c *Client
}

func NewCompanies(c *Client) *Companies {
	return &Companies{c: c}
}

func (g *Companies) List(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company

	err := g.c.get(ctx, "/clientes", nil, &companies)
	if err != nil {
		return nil, err
	}

	return companies, nil
}

func (g *Companies) Get(ctx context.Context, id uuid.UUID) (entity.Company, error) {
	var company entity.Company

	err := g.c.get(ctx, "/clientes/"+id.String(), nil, &company)

	return company, err
}

func (g *Companies) SearchByCNPJ(ctx context.Context, cnpj string) (entity.Company, error) {
	var company entity.Company

	err := g.c.get(ctx, "/clientes/search/cnpj/"+url.PathEscape(cnpj), nil, &company)

	return company, err
}

func (g *Companies) Create(ctx context.Context, in entity.CompanyInput) (entity.Company, error) {
	var company entity.Company

	err := g.c.post(ctx, "/clientes", in, &company)

	return company, err
}

func (g *Companies) Update(ctx context.Context, id uuid.UUID, in entity.CompanyInput) (entity.Company, error) {
	var company entity.Company

	err := g.c.put(ctx, "/clientes/"+id.String(), in, &company)

	return company, err
}

func (g *Companies) Delete(ctx context.Context, id uuid.UUID) error {
	return g.c.delete(ctx, "/clientes/"+id.String())
}
