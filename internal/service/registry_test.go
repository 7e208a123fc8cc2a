package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestService_LookupCNPJ(t *testing.T) { //nolint:funlen
	t.Parallel()

	registryCompany := entity.RegistryCompany{CNPJ: "11222333000181", Status: "OK", LegalName: "EMPRESA TESTE"}
	rateLimited := &entity.RateLimitError{RetryAfter: 20, Err: entity.ErrRegistryRateLimited}

	tests := []struct {
		name         string
		cnpj         string
		mockBehavior func(ts *TestService)
		want         entity.RegistryCompany
		wantErr      error
	}{
		{
			name: "cache hit",
			cnpj: "11.222.333/0001-81",
			mockBehavior: func(ts *TestService) {
				ts.cache.EXPECT().Get(gomock.Any(), "cnpj:11222333000181", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
						*dst.(*entity.RegistryCompany) = registryCompany
						return true, nil
					})
			},
			want: registryCompany,
		},
		{
			name: "cache miss",
			cnpj: "11222333000181",
			mockBehavior: func(ts *TestService) {
				ts.cache.EXPECT().Get(gomock.Any(), "cnpj:11222333000181", gomock.Any()).Return(false, nil)
				ts.registry.EXPECT().Lookup(gomock.Any(), "11222333000181").Return(registryCompany, nil)
				ts.cache.EXPECT().Set(gomock.Any(), "cnpj:11222333000181", registryCompany, time.Hour).Return(nil)
			},
			want: registryCompany,
		},
		{
			name: "rate limited",
			cnpj: "11222333000181",
			mockBehavior: func(ts *TestService) {
				ts.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				ts.registry.EXPECT().Lookup(gomock.Any(), "11222333000181").Return(entity.RegistryCompany{}, rateLimited)
			},
			wantErr: entity.ErrRegistryRateLimited,
		},
		{
			name:         "invalid cnpj never reaches the registry",
			cnpj:         "11222333000180",
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrInvalidCNPJ,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			tt.mockBehavior(ts)

			got, err := ts.s.LookupCNPJ(context.Background(), tt.cnpj)
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)
				return
			}

			r.NoError(err)
			r.Equal(tt.want, got)
		})
	}
}

func TestService_Cities(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	cities := []entity.City{{ID: 3509502, Name: "Campinas"}}

	ts.cache.EXPECT().Get(gomock.Any(), "cidades:SP", gomock.Any()).Return(false, nil)
	ts.cities.EXPECT().Cities(gomock.Any(), "SP").Return(cities, nil)
	ts.cache.EXPECT().Set(gomock.Any(), "cidades:SP", cities, time.Hour).Return(nil)

	got, err := ts.s.Cities(context.Background(), " sp ")
	r.NoError(err)
	r.Equal(cities, got)

	_, err = ts.s.Cities(context.Background(), "SPX")
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
}
