package gateway

import (
	"context"
	"net/url"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Permits struct {
	c *Client
}

func NewPermits(c *Client) *Permits {
	return &Permits{c: c}
}

// permitRequest sends dates as YYYY-MM-DD.
type permitRequest struct {
	CompanyID        uuid.UUID                `json:"clienteId"`
	Type             entity.PermitType        `json:"type"`
	RequestDate      string                   `json:"requestDate"`
	IssueDate        string                   `json:"issueDate,omitempty"`
	ExpirationDate   string                   `json:"expirationDate,omitempty"`
	ProcessingStatus *entity.ProcessingStatus `json:"processingStatus,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
}

func newPermitRequest(in entity.PermitInput) permitRequest {
	return permitRequest{
		CompanyID:        in.CompanyID,
		Type:             in.Type,
		RequestDate:      formatDate(&in.RequestDate),
		IssueDate:        formatDate(in.IssueDate),
		ExpirationDate:   formatDate(in.ExpirationDate),
		ProcessingStatus: in.ProcessingStatus,
		Notes:            in.Notes,
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

func (g *Permits) List(ctx context.Context, filter entity.PermitsFilter) ([]entity.Permit, error) {
	query := url.Values{}

	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	for _, t := range filter.Types {
		query.Add("tipo", string(t))
	}

	for _, s := range filter.Statuses {
		query.Add("status", string(s))
	}

	var permits []entity.Permit

	err := g.c.get(ctx, "/alvaras", query, &permits)
	if err != nil {
		return nil, err
	}

	return permits, nil
}

func (g *Permits) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Permit, error) {
	var permits []entity.Permit

	err := g.c.get(ctx, "/alvaras/cliente/"+companyID.String(), nil, &permits)
	if err != nil {
		return nil, err
	}

	return permits, nil
}

func (g *Permits) Get(ctx context.Context, id uuid.UUID) (entity.Permit, error) {
	var permit entity.Permit

	err := g.c.get(ctx, "/alvaras/"+id.String(), nil, &permit)

	return permit, err
}

func (g *Permits) Create(ctx context.Context, in entity.PermitInput) (entity.Permit, error) {
	var permit entity.Permit

	err := g.c.post(ctx, "/alvaras", newPermitRequest(in), &permit)

	return permit, err
}

func (g *Permits) Update(ctx context.Context, id uuid.UUID, in entity.PermitInput) (entity.Permit, error) {
	var permit entity.Permit

	err := g.c.put(ctx, "/alvaras/"+id.String(), newPermitRequest(in), &permit)

	return permit, err
}

func (g *Permits) Delete(ctx context.Context, id uuid.UUID) error {
	return g.c.delete(ctx, "/alvaras/"+id.String())
}

type PermitOptions struct {
	Types            []entity.PermitType             `json:"tipos"`
	ProcessingStatus []entity.ProcessingStatusOption `json:"processingStatus"`
}

func (g *Permits) Options(ctx context.Context) (PermitOptions, error) {
	var opts PermitOptions

	err := g.c.get(ctx, "/alvaras/opcoes", nil, &opts)

	return opts, err
}
