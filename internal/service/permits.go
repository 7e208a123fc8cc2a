package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
)

func (s *Service) CreatePermit(ctx context.Context, in entity.PermitInput) (entity.Permit, error) {
	err := ValidatePermit(in)
	if err != nil {
		return entity.Permit{}, err
	}

	company, err := s.permitCompany(ctx, in)
	if err != nil {
		return entity.Permit{}, err
	}

	now := s.now()
	permit := in.Apply(entity.Permit{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyName: company.LegalName,
		CompanyCNPJ: company.CNPJ,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	err = s.repo.CreatePermit(ctx, permit)
	if err != nil {
		return entity.Permit{}, fmt.Errorf("create permit: %w", err)
	}

	permit = lifecycle.Refresh(permit, now)
	s.events.PermitChanged(ctx, permitEvent(entity.PermitEventCreated, permit, now))

	slog.InfoContext(ctx, "permit created", "permit_id", permit.ID, "company_id", permit.CompanyID, "type", permit.Type)

	return permit, nil
}

func (s *Service) UpdatePermit(ctx context.Context, id uuid.UUID, in entity.PermitInput) (entity.Permit, error) {
	err := ValidatePermit(in)
	if err != nil {
		return entity.Permit{}, err
	}

	permit, err := s.repo.PermitByID(ctx, id)
	if err != nil {
		return entity.Permit{}, fmt.Errorf("get permit %s: %w", id, err)
	}

	if permit.CompanyID != in.CompanyID || permit.Type != in.Type {
		company, err := s.permitCompany(ctx, in)
		if err != nil {
			return entity.Permit{}, err
		}

		permit.CompanyName = company.LegalName
		permit.CompanyCNPJ = company.CNPJ
	}

	now := s.now()
	permit = in.Apply(permit)
	permit.UpdatedAt = now

	err = s.repo.UpdatePermit(ctx, permit)
	if err != nil {
		return entity.Permit{}, fmt.Errorf("update permit: %w", err)
	}

	permit = lifecycle.Refresh(permit, now)
	s.events.PermitChanged(ctx, permitEvent(entity.PermitEventUpdated, permit, now))

	return permit, nil
}

func (s *Service) DeletePermit(ctx context.Context, id uuid.UUID) error {
	permit, err := s.repo.PermitByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get permit %s: %w", id, err)
	}

	err = s.repo.DeletePermit(ctx, id)
	if err != nil {
		return fmt.Errorf("delete permit %s: %w", id, err)
	}

	now := s.now()
	s.events.PermitChanged(ctx, permitEvent(entity.PermitEventDeleted, lifecycle.Refresh(permit, now), now))

	return nil
}

func (s *Service) Permit(ctx context.Context, id uuid.UUID) (entity.Permit, error) {
	permit, err := s.repo.PermitByID(ctx, id)
	if err != nil {
		return entity.Permit{}, err
	}

	return lifecycle.Refresh(permit, s.now()), nil
}

func (s *Service) Permits(ctx context.Context, filter entity.PermitsFilter) ([]entity.Permit, error) {
	permits, err := s.repo.Permits(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get permits: %w", err)
	}

	permits = lifecycle.RefreshAll(permits, s.now())

	if len(filter.Statuses) > 0 {
		permits = slices.DeleteFunc(permits, func(p entity.Permit) bool {
			return !slices.Contains(filter.Statuses, p.Status)
		})
	}

	return permits, nil
}

func (s *Service) PermitsByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Permit, error) {
	return s.Permits(ctx, entity.PermitsFilter{CompanyID: &companyID})
}

// permitCompany loads the owner company. The company's permit allow-list is
// left to the permit form; the type itself was checked by ValidatePermit.
func (s *Service) permitCompany(ctx context.Context, in entity.PermitInput) (entity.Company, error) {
	company, err := s.repo.CompanyByID(ctx, in.CompanyID)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.Company{}, entity.NewValidationError(entity.ErrNotFound, "clienteId", "Cliente não encontrado")
	}

	if err != nil {
		return entity.Company{}, fmt.Errorf("get company %s: %w", in.CompanyID, err)
	}

	return company, nil
}

func permitEvent(t entity.PermitEventType, p entity.Permit, now time.Time) entity.PermitEvent {
	return entity.PermitEvent{
		Type:           t,
		PermitID:       p.ID,
		CompanyID:      p.CompanyID,
		PermitType:     p.Type,
		Status:         p.Status,
		ExpirationDate: p.ExpirationDate,
		DaysLeft:       lifecycle.DaysUntilExpiration(p.ExpirationDate, now),
		OccurredAt:     now,
	}
}
