// Package store keeps client-side caches of companies and permits.
// Every mutation goes to the remote gateway first; the cache is patched only
// when the remote call succeeds.
package store

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=store.go -destination=../mocks/store.go -package=mocks -typed

type CompanyGateway interface {
	List(ctx context.Context) ([]entity.Company, error)
	Create(ctx context.Context, in entity.CompanyInput) (entity.Company, error)
	Update(ctx context.Context, id uuid.UUID, in entity.CompanyInput) (entity.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PermitGateway interface {
	List(ctx context.Context, filter entity.PermitsFilter) ([]entity.Permit, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Permit, error)
	Create(ctx context.Context, in entity.PermitInput) (entity.Permit, error)
	Update(ctx context.Context, id uuid.UUID, in entity.PermitInput) (entity.Permit, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// fold lowercases s and strips diacritics so "alvara" matches "Alvará".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strings.ToLower(out)
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, s)
}

type clock func() time.Time
