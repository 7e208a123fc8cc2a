package store

import (
	"context"
	"slices"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Companies struct {
	gw CompanyGateway

	mu        sync.RWMutex
	companies []entity.Company
}

func NewCompanies(gw CompanyGateway) *Companies {
	return &Companies{gw: gw}
}

func (s *Companies) Load(ctx context.Context) ([]entity.Company, error) {
	companies, err := s.gw.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.companies = slices.Clone(companies)
	s.mu.Unlock()

	return companies, nil
}

func (s *Companies) Add(ctx context.Context, in entity.CompanyInput) (entity.Company, error) {
	company, err := s.gw.Create(ctx, in)
	if err != nil {
		return entity.Company{}, err
	}

	s.mu.Lock()
	s.companies = append(s.companies, company)
	s.mu.Unlock()

	return company, nil
}

func (s *Companies) Update(ctx context.Context, id uuid.UUID, in entity.CompanyInput) (entity.Company, error) {
	company, err := s.gw.Update(ctx, id, in)
	if err != nil {
		return entity.Company{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.companies, func(c entity.Company) bool { return c.ID == id })
	if i < 0 {
		s.companies = append(s.companies, company)
	} else {
		s.companies[i] = company
	}

	return company, nil
}

func (s *Companies) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.gw.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.companies = slices.DeleteFunc(s.companies, func(c entity.Company) bool { return c.ID == id })
	s.mu.Unlock()

	return nil
}

func (s *Companies) All() []entity.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.companies)
}

func (s *Companies) ByID(id uuid.UUID) (entity.Company, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.companies, func(c entity.Company) bool { return c.ID == id })
	if i < 0 {
		return entity.Company{}, false
	}

	return s.companies[i], true
}

// Search matches the legal or trade name, accent-insensitive, or the CNPJ digits.
func (s *Companies) Search(query string) []entity.Company {
	all := s.All()

	q := fold(query)
	if q == "" {
		return all
	}

	d := digits(query)

	return slices.DeleteFunc(all, func(c entity.Company) bool {
		matched := containsFold(c.LegalName, q) ||
			containsFold(c.TradeName, q) ||
			(d != "" && containsDigits(c.CNPJ, d))

		return !matched
	})
}
