package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/mocks"
	"github.com/samandr77/microservices/alvaras/internal/store"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func permit(name string, issue, exp *time.Time, t entity.PermitType) entity.Permit {
	return entity.Permit{
		ID:             uuid.Must(uuid.NewV4()),
		CompanyID:      uuid.Must(uuid.NewV4()),
		Type:           t,
		RequestDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IssueDate:      issue,
		ExpirationDate: exp,
		CompanyName:    name,
		CompanyCNPJ:    "11222333000181",
		// Stale value from the server, recomputed locally.
		Status: entity.PermitStatusValid,
	}
}

func newPermits(t *testing.T) (*store.Permits, *mocks.MockPermitGateway) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockPermitGateway(ctrl)

	return store.NewPermits(gw, func() time.Time { return now }), gw
}

func loaded(t *testing.T, permits ...entity.Permit) *store.Permits {
	t.Helper()

	s, gw := newPermits(t)
	gw.EXPECT().List(gomock.Any(), entity.PermitsFilter{}).Return(permits, nil)

	_, err := s.Load(context.Background())
	require.NoError(t, err)

	return s
}

func TestPermits_LoadRecomputesStatus(t *testing.T) {
	t.Parallel()

	s := loaded(t,
		permit("Padaria Pão Quente", nil, nil, entity.PermitTypeOperating),
		permit("Mercado Bom Preço", date(2024, 1, 1), date(2025, 3, 1), entity.PermitTypeSanitary),
		permit("Oficina Rápida", date(2024, 1, 1), date(2025, 4, 9), entity.PermitTypeFireDepartment),
		permit("Farmácia Central", date(2024, 1, 1), date(2025, 4, 10), entity.PermitTypeOperating),
	)

	statuses := make([]entity.PermitStatus, 0, 4)
	for _, p := range s.All() {
		statuses = append(statuses, p.Status)
	}

	require.Equal(t, []entity.PermitStatus{
		entity.PermitStatusPending,
		entity.PermitStatusExpired,
		entity.PermitStatusExpiring,
		entity.PermitStatusValid,
	}, statuses)

	require.Equal(t, entity.PermitStats{Total: 4, Pending: 1, Valid: 1, Expiring: 1, Expired: 1}, s.Stats())
}

func TestPermits_Tabs(t *testing.T) {
	t.Parallel()

	s := loaded(t,
		permit("A", nil, nil, entity.PermitTypeOperating),
		permit("B", nil, nil, entity.PermitTypeSanitary),
		permit("C", date(2024, 1, 1), date(2025, 3, 1), entity.PermitTypeSanitary),
	)

	opening, openingStats := s.Opening()
	require.Len(t, opening, 2)
	require.Equal(t, entity.PermitStats{Total: 2, Pending: 2}, openingStats)

	operating, operatingStats := s.Operating()
	require.Len(t, operating, 1)
	require.Equal(t, entity.PermitStats{Total: 1, Expired: 1}, operatingStats)
}

func TestPermits_Filter(t *testing.T) {
	t.Parallel()

	s := loaded(t,
		permit("Padaria Pão Quente", date(2024, 1, 1), date(2025, 3, 20), entity.PermitTypeSanitary),
		permit("Mercado Bom Preço", date(2024, 1, 1), date(2026, 1, 1), entity.PermitTypeOperating),
		permit("Padaria Sol", nil, nil, entity.PermitTypeOperating),
	)

	tests := []struct {
		name   string
		tab    store.Tab
		search string
		status entity.PermitStatus
		want   []string
	}{
		{name: "all", want: []string{"Padaria Pão Quente", "Mercado Bom Preço", "Padaria Sol"}},
		{name: "accent insensitive name", search: "pao", want: []string{"Padaria Pão Quente"}},
		{name: "permit type", search: "sanitario", want: []string{"Padaria Pão Quente"}},
		{name: "cnpj digits", search: "11.222.333", want: []string{"Padaria Pão Quente", "Mercado Bom Preço", "Padaria Sol"}},
		{name: "status", status: entity.PermitStatusExpiring, want: []string{"Padaria Pão Quente"}},
		{name: "operating tab with search", tab: store.TabOperating, search: "padaria", want: []string{"Padaria Pão Quente"}},
		{name: "no match", search: "farmácia", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := make([]string, 0)
			for _, p := range s.Filter(tt.tab, tt.search, tt.status) {
				got = append(got, p.CompanyName)
			}

			require.Equal(t, tt.want, got)
		})
	}
}

func TestPermits_Upcoming(t *testing.T) {
	t.Parallel()

	s := loaded(t,
		permit("valid", date(2024, 1, 1), date(2026, 1, 1), entity.PermitTypeOperating),
		permit("soon", date(2024, 1, 1), date(2025, 3, 25), entity.PermitTypeOperating),
		permit("today", date(2024, 1, 1), date(2025, 3, 10), entity.PermitTypeOperating),
		permit("late", date(2024, 1, 1), date(2025, 3, 5), entity.PermitTypeOperating),
	)

	upcoming := s.Upcoming(2)
	require.Len(t, upcoming, 2)
	require.Equal(t, "late", upcoming[0].Permit.CompanyName)
	require.Equal(t, "5 dias vencido", upcoming[0].ExpirationText)
	require.Equal(t, "today", upcoming[1].Permit.CompanyName)
	require.Equal(t, "Vence hoje", upcoming[1].ExpirationText)

	all := s.Upcoming(0)
	require.Len(t, all, 3)
	require.Equal(t, "15 dias", all[2].ExpirationText)
}

func TestPermits_RemoteFailureLeavesCache(t *testing.T) {
	t.Parallel()

	s, gw := newPermits(t)

	existing := permit("A", nil, nil, entity.PermitTypeOperating)
	gw.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entity.Permit{existing}, nil)

	_, err := s.Load(context.Background())
	require.NoError(t, err)

	remoteErr := errors.New("Erro ao atualizar alvará")

	gw.EXPECT().Update(gomock.Any(), existing.ID, gomock.Any()).Return(entity.Permit{}, remoteErr)
	gw.EXPECT().Delete(gomock.Any(), existing.ID).Return(remoteErr)
	gw.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entity.Permit{}, remoteErr)

	in := existing.Input()
	in.Notes = "changed"

	_, err = s.Update(context.Background(), existing.ID, in)
	require.ErrorIs(t, err, remoteErr)

	err = s.Delete(context.Background(), existing.ID)
	require.ErrorIs(t, err, remoteErr)

	_, err = s.Add(context.Background(), in)
	require.ErrorIs(t, err, remoteErr)

	all := s.All()
	require.Len(t, all, 1)
	require.Empty(t, all[0].Notes)
}

func TestPermits_Mutations(t *testing.T) {
	t.Parallel()

	s, gw := newPermits(t)
	ctx := context.Background()

	gw.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	created := permit("A", nil, nil, entity.PermitTypeOperating)
	gw.EXPECT().Create(gomock.Any(), created.Input()).Return(created, nil)

	got, err := s.Add(ctx, created.Input())
	require.NoError(t, err)
	require.Equal(t, entity.PermitStatusPending, got.Status)

	issued := created
	issued.IssueDate = date(2025, 3, 10)
	issued.ExpirationDate = date(2025, 3, 30)

	gw.EXPECT().Update(gomock.Any(), created.ID, issued.Input()).Return(issued, nil)

	got, err = s.Update(ctx, created.ID, issued.Input())
	require.NoError(t, err)
	require.Equal(t, entity.PermitStatusExpiring, got.Status)

	cached, ok := s.ByID(created.ID)
	require.True(t, ok)
	require.Equal(t, entity.PermitStatusExpiring, cached.Status)

	gw.EXPECT().Delete(gomock.Any(), created.ID).Return(nil)
	require.NoError(t, s.Delete(ctx, created.ID))

	_, ok = s.ByID(created.ID)
	require.False(t, ok)
}

func TestPermits_LoadByCompany(t *testing.T) {
	t.Parallel()

	other := permit("other", nil, nil, entity.PermitTypeOperating)
	mine := permit("mine", nil, nil, entity.PermitTypeOperating)

	s, gw := newPermits(t)
	gw.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entity.Permit{other, mine}, nil)

	_, err := s.Load(context.Background())
	require.NoError(t, err)

	fresh := mine
	fresh.Notes = "fresh"
	gw.EXPECT().ListByCompany(gomock.Any(), mine.CompanyID).Return([]entity.Permit{fresh}, nil)

	got, err := s.LoadByCompany(context.Background(), mine.CompanyID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	all := s.All()
	require.Len(t, all, 2)

	cached, ok := s.ByID(mine.ID)
	require.True(t, ok)
	require.Equal(t, "fresh", cached.Notes)
}
