package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestService_NotifyExpiringPermits(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	expired := entity.Permit{ID: uuid.Must(uuid.NewV4()), IssueDate: date(2024, 1, 1), ExpirationDate: date(2025, 3, 1)}
	expiring := entity.Permit{ID: uuid.Must(uuid.NewV4()), IssueDate: date(2024, 1, 1), ExpirationDate: date(2025, 3, 10)}

	limit := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	ts.repo.EXPECT().Permits(gomock.Any(), entity.PermitsFilter{ExpiresBefore: &limit}).Return([]entity.Permit{expired, expiring}, nil)

	var got []entity.PermitEvent

	ts.events.EXPECT().PermitExpiring(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e entity.PermitEvent) { got = append(got, e) }).
		Times(2)

	r.NoError(ts.s.NotifyExpiringPermits(context.Background()))
	r.Len(got, 2)
	r.Equal(entity.PermitStatusExpired, got[0].Status)
	r.Equal(-9, *got[0].DaysLeft)
	r.Equal(entity.PermitStatusExpiring, got[1].Status)
	r.Equal(entity.PermitEventExpiring, got[1].Type)
}

func TestService_PruneLoginAttempts(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().DeleteAttemptsBefore(gomock.Any(), testNow.Add(-15*time.Minute)).Return(int64(4), nil)
	r.NoError(ts.s.PruneLoginAttempts(context.Background()))

	ts.repo.EXPECT().DeleteAttemptsBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("conn closed"))
	r.ErrorContains(ts.s.PruneLoginAttempts(context.Background()), "delete attempts: conn closed")
}

func TestService_SyncSecondaryActivities(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	company := entity.Company{ID: uuid.Must(uuid.NewV4()), CNPJ: "11222333000181"}
	reg := entity.RegistryCompany{
		CNPJ: company.CNPJ,
		SecondaryActivities: []entity.RegistryActivity{
			{Code: "56.20-1-04", Text: "Fornecimento de alimentos"},
			{Code: "00.00-0-00", Text: "Não informada"},
		},
	}

	ts.repo.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
	ts.repo.EXPECT().ActivitiesByCompany(gomock.Any(), company.ID).Return(nil, nil)
	ts.cache.EXPECT().Get(gomock.Any(), "cnpj:"+company.CNPJ, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*dst.(*entity.RegistryCompany) = reg
			return true, nil
		})
	ts.repo.EXPECT().CreateActivities(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, activities ...entity.Activity) error {
			r.Len(activities, 1)
			r.Equal("56.20-1-04", activities[0].Code)
			r.Equal(company.ID, activities[0].CompanyID)

			return nil
		})

	r.NoError(ts.s.SyncSecondaryActivities(context.Background(), company.ID))
}

func TestService_SyncSecondaryActivities_SkipsWhenNotCached(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	company := entity.Company{ID: uuid.Must(uuid.NewV4()), CNPJ: "11222333000181"}

	ts.repo.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
	ts.repo.EXPECT().ActivitiesByCompany(gomock.Any(), company.ID).Return(nil, nil)
	ts.cache.EXPECT().Get(gomock.Any(), "cnpj:"+company.CNPJ, gomock.Any()).Return(false, nil)

	require.NoError(t, ts.s.SyncSecondaryActivities(context.Background(), company.ID))
}

func TestService_SyncSecondaryActivities_SkipsWhenPresent(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	companyID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().CompanyByID(gomock.Any(), companyID).Return(entity.Company{ID: companyID}, nil)
	ts.repo.EXPECT().ActivitiesByCompany(gomock.Any(), companyID).Return([]entity.Activity{{Code: "1"}}, nil)

	require.NoError(t, ts.s.SyncSecondaryActivities(context.Background(), companyID))
}
