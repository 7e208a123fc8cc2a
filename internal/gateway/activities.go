package gateway

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Activities struct {
	c *Client
}

func NewActivities(c *Client) *Activities {
	return &Activities{c: c}
}

func (g *Activities) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Activity, error) {
	var activities []entity.Activity

	err := g.c.get(ctx, "/atividades-secundarias/cliente/"+companyID.String(), nil, &activities)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (g *Activities) Create(ctx context.Context, companyID uuid.UUID, in entity.ActivityInput) (entity.Activity, error) {
	var activity entity.Activity

	err := g.c.post(ctx, "/atividades-secundarias/"+companyID.String(), in, &activity)

	return activity, err
}

func (g *Activities) Delete(ctx context.Context, id uuid.UUID) error {
	return g.c.delete(ctx, "/atividades-secundarias/"+id.String())
}
