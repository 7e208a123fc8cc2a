package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func (s *Service) Activities(ctx context.Context, companyID uuid.UUID) ([]entity.Activity, error) {
	return s.repo.ActivitiesByCompany(ctx, companyID)
}

func (s *Service) CreateActivity(ctx context.Context, companyID uuid.UUID, in entity.ActivityInput) (entity.Activity, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Description = strings.TrimSpace(in.Description)

	err := ValidateActivity(in)
	if err != nil {
		return entity.Activity{}, err
	}

	_, err = s.repo.CompanyByID(ctx, companyID)
	if err != nil {
		return entity.Activity{}, fmt.Errorf("get company %s: %w", companyID, err)
	}

	now := s.now()
	activity := entity.Activity{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   companyID,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.CreateActivity(ctx, activity)
	if err != nil {
		return entity.Activity{}, fmt.Errorf("create activity %s: %w", in.Code, err)
	}

	return activity, nil
}

func (s *Service) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteActivity(ctx, id)
}
