package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func (s *Service) CreateCompany(ctx context.Context, in entity.CompanyInput) (entity.Company, error) {
	in.CNPJ = CleanCNPJ(in.CNPJ)

	err := ValidateCompany(in)
	if err != nil {
		return entity.Company{}, err
	}

	_, err = s.repo.CompanyByCNPJ(ctx, in.CNPJ)
	if err == nil {
		return entity.Company{}, fmt.Errorf("company %s: %w", in.CNPJ, entity.ErrAlreadyExists)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Company{}, fmt.Errorf("get company by cnpj: %w", err)
	}

	now := s.now()
	company := in.Apply(entity.Company{
		ID:        uuid.Must(uuid.NewV4()),
		CreatedAt: now,
		UpdatedAt: now,
	})

	err = s.repo.CreateCompany(ctx, company)
	if err != nil {
		return entity.Company{}, fmt.Errorf("create company: %w", err)
	}

	s.events.CompanyCreated(ctx, entity.CompanyCreatedEvent{CompanyID: company.ID, CNPJ: company.CNPJ})

	slog.InfoContext(ctx, "company created", "company_id", company.ID, "cnpj", company.CNPJ)

	return company, nil
}

func (s *Service) UpdateCompany(ctx context.Context, id uuid.UUID, in entity.CompanyInput) (entity.Company, error) {
	in.CNPJ = CleanCNPJ(in.CNPJ)

	err := ValidateCompany(in)
	if err != nil {
		return entity.Company{}, err
	}

	company, err := s.repo.CompanyByID(ctx, id)
	if err != nil {
		return entity.Company{}, fmt.Errorf("get company %s: %w", id, err)
	}

	company = in.Apply(company)
	company.UpdatedAt = s.now()

	err = s.repo.UpdateCompany(ctx, company)
	if err != nil {
		return entity.Company{}, fmt.Errorf("update company: %w", err)
	}

	return company, nil
}

// DeleteCompany removes the company with its permits, activities and documents.
func (s *Service) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	docs, err := s.repo.DocumentsByCompany(ctx, id)
	if err != nil {
		return fmt.Errorf("get company documents: %w", err)
	}

	err = s.repo.DeleteCompany(ctx, id)
	if err != nil {
		return fmt.Errorf("delete company %s: %w", id, err)
	}

	for _, d := range docs {
		s.removeFile(ctx, d)
	}

	slog.InfoContext(ctx, "company deleted", "company_id", id, "documents", len(docs))

	return nil
}

func (s *Service) Company(ctx context.Context, id uuid.UUID) (entity.Company, error) {
	return s.repo.CompanyByID(ctx, id)
}

func (s *Service) Companies(ctx context.Context) ([]entity.Company, error) {
	return s.repo.Companies(ctx)
}

// CompanyByCNPJ finds a registered company by CNPJ in any format.
func (s *Service) CompanyByCNPJ(ctx context.Context, cnpj string) (entity.Company, error) {
	cnpj = CleanCNPJ(cnpj)
	if len(cnpj) != cnpjLen {
		return entity.Company{}, entity.NewValidationError(entity.ErrInvalidCNPJ, "cnpj", "CNPJ inválido")
	}

	return s.repo.CompanyByCNPJ(ctx, cnpj)
}
