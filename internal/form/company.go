package form

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=company.go -destination=../mocks/form_company.go -package=mocks -typed

// Placeholder code the registry returns when a company has no secondary activity.
const emptyActivityCode = "00.00-0-00"

type RegistryLookup interface {
	Lookup(ctx context.Context, cnpj string) (entity.RegistryCompany, error)
}

type CompanySaver interface {
	Add(ctx context.Context, in entity.CompanyInput) (entity.Company, error)
}

type ActivityCreator interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Activity, error)
	Create(ctx context.Context, companyID uuid.UUID, in entity.ActivityInput) (entity.Activity, error)
}

type CompanyForm struct {
	registry   RegistryLookup
	companies  CompanySaver
	activities ActivityCreator

	Input     entity.CompanyInput
	Secondary []entity.ActivityInput
}

func NewCompanyForm(registry RegistryLookup, companies CompanySaver, activities ActivityCreator) *CompanyForm {
	return &CompanyForm{
		registry:   registry,
		companies:  companies,
		activities: activities,
	}
}

// Seed fills the form from the tax registry. Invalid CNPJs are rejected
// without a lookup. The permit allow-list typed so far is kept.
func (f *CompanyForm) Seed(ctx context.Context, cnpj string) (entity.RegistryCompany, error) {
	clean := service.CleanCNPJ(cnpj)
	if !service.IsValidCNPJ(clean) {
		return entity.RegistryCompany{}, entity.NewValidationError(entity.ErrInvalidCNPJ, "cnpj", "CNPJ inválido")
	}

	company, err := f.registry.Lookup(ctx, clean)
	if err != nil {
		return entity.RegistryCompany{}, err
	}

	permitTypes := f.Input.PermitTypes

	f.Input = company.CompanyInput()
	f.Input.CNPJ = clean
	f.Input.PermitTypes = permitTypes
	f.Secondary = f.Secondary[:0]

	for _, a := range company.SecondaryActivities {
		if a.Code == "" || a.Code == emptyActivityCode {
			continue
		}

		f.Secondary = append(f.Secondary, entity.ActivityInput{Code: a.Code, Description: a.Text})
	}

	return company, nil
}

func (f *CompanyForm) SetPermitTypes(types ...entity.PermitType) {
	f.Input.PermitTypes = slices.Compact(slices.Clone(types))
}

// Submit creates the company and then its secondary activities. Activity
// failures do not undo the company; they come back joined with it.
func (f *CompanyForm) Submit(ctx context.Context) (entity.Company, error) {
	err := service.ValidateCompany(f.Input)
	if err != nil {
		return entity.Company{}, err
	}

	for _, a := range f.Secondary {
		err = service.ValidateActivity(a)
		if err != nil {
			return entity.Company{}, err
		}
	}

	company, err := f.companies.Add(ctx, f.Input)
	if err != nil {
		return entity.Company{}, err
	}

	return company, f.importActivities(ctx, company.ID)
}

func (f *CompanyForm) importActivities(ctx context.Context, companyID uuid.UUID) error {
	if len(f.Secondary) == 0 {
		return nil
	}

	existing, err := f.activities.ListByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	var errs []error

	for _, a := range f.Secondary {
		if slices.ContainsFunc(existing, func(e entity.Activity) bool { return e.Code == a.Code }) {
			continue
		}

		_, err = f.activities.Create(ctx, companyID, a)
		if errors.Is(err, entity.ErrAlreadyExists) {
			continue
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("create activity %s: %w", a.Code, err))
		}
	}

	return errors.Join(errs...)
}
