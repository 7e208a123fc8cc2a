package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

const (
	registryCachePrefix = "cnpj:"
	citiesCachePrefix   = "cidades:"
)

// LookupCNPJ queries the tax registry. Successful answers are cached so
// repeated lookups do not spend the registry's request quota.
func (s *Service) LookupCNPJ(ctx context.Context, cnpj string) (entity.RegistryCompany, error) {
	cnpj = CleanCNPJ(cnpj)
	if !IsValidCNPJ(cnpj) {
		return entity.RegistryCompany{}, entity.NewValidationError(entity.ErrInvalidCNPJ, "cnpj", "CNPJ inválido")
	}

	var company entity.RegistryCompany

	ok, err := s.cache.Get(ctx, registryCachePrefix+cnpj, &company)
	if err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("get cached registry company: %s", err), "cnpj", cnpj)
	}

	if ok {
		return company, nil
	}

	company, err = s.registry.Lookup(ctx, cnpj)
	if err != nil {
		return entity.RegistryCompany{}, fmt.Errorf("lookup cnpj %s: %w", cnpj, err)
	}

	err = s.cache.Set(ctx, registryCachePrefix+cnpj, company, s.cacheTTL)
	if err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("cache registry company: %s", err), "cnpj", cnpj)
	}

	return company, nil
}

func (s *Service) Cities(ctx context.Context, uf string) ([]entity.City, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if len(uf) != 2 {
		return nil, entity.NewValidationError(nil, "uf", "UF inválida")
	}

	var cities []entity.City

	ok, err := s.cache.Get(ctx, citiesCachePrefix+uf, &cities)
	if err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("get cached cities: %s", err), "uf", uf)
	}

	if ok {
		return cities, nil
	}

	cities, err = s.cities.Cities(ctx, uf)
	if err != nil {
		return nil, fmt.Errorf("get cities of %s: %w", uf, err)
	}

	err = s.cache.Set(ctx, citiesCachePrefix+uf, cities, s.cacheTTL)
	if err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("cache cities: %s", err), "uf", uf)
	}

	return cities, nil
}
