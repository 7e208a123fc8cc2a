package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
)

func TestCalculateStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	issued := now.AddDate(-1, 0, 0)

	tests := []struct {
		name       string
		issueDate  *time.Time
		expiration *time.Time
		want       entity.PermitStatus
	}{
		{name: "no issue date", want: entity.PermitStatusPending},
		{name: "no issue date with expiration", expiration: ptr(now.AddDate(0, 0, 100)), want: entity.PermitStatusPending},
		{name: "issued without expiration", issueDate: &issued, want: entity.PermitStatusValid},
		{name: "expired yesterday", issueDate: &issued, expiration: ptr(now.AddDate(0, 0, -1)), want: entity.PermitStatusExpired},
		{name: "expires today", issueDate: &issued, expiration: ptr(now), want: entity.PermitStatusExpiring},
		{name: "expires earlier today", issueDate: &issued, expiration: ptr(now.Add(-time.Hour)), want: entity.PermitStatusExpiring},
		{name: "expires in 30 days", issueDate: &issued, expiration: ptr(now.AddDate(0, 0, 30)), want: entity.PermitStatusExpiring},
		{name: "expires in 31 days", issueDate: &issued, expiration: ptr(now.AddDate(0, 0, 31)), want: entity.PermitStatusValid},
		{name: "expires next year", issueDate: &issued, expiration: ptr(now.AddDate(1, 0, 0)), want: entity.PermitStatusValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := lifecycle.CalculateStatus(tt.issueDate, tt.expiration, now)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, lifecycle.CalculateStatus(tt.issueDate, tt.expiration, now))
		})
	}
}

func TestCalculateStatus_DateStoredAtUTCMidnight(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, loc)
	issued := now.AddDate(0, -6, 0)
	exp := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.Equal(t, entity.PermitStatusExpiring, lifecycle.CalculateStatus(&issued, &exp, now))
}

func TestRefresh_DiscardsIncomingStatus(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := entity.Permit{Status: entity.PermitStatusValid}

	require.Equal(t, entity.PermitStatusPending, lifecycle.Refresh(p, now).Status)

	permits := lifecycle.RefreshAll([]entity.Permit{
		{Status: entity.PermitStatusExpired},
		{IssueDate: &now, Status: entity.PermitStatusPending},
	}, now)
	require.Equal(t, entity.PermitStatusPending, permits[0].Status)
	require.Equal(t, entity.PermitStatusValid, permits[1].Status)
}

func TestDaysUntilExpiration(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		exp      *time.Time
		wantDays *int
		wantText string
	}{
		{name: "no expiration", exp: nil, wantDays: nil, wantText: ""},
		{name: "today", exp: ptr(now.Add(5 * time.Hour)), wantDays: ptr(0), wantText: "Vence hoje"},
		{name: "future", exp: ptr(now.AddDate(0, 0, 12)), wantDays: ptr(12), wantText: "12 dias"},
		{name: "past", exp: ptr(now.AddDate(0, 0, -3)), wantDays: ptr(-3), wantText: "3 dias vencido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := lifecycle.DaysUntilExpiration(tt.exp, now)
			require.Equal(t, tt.wantDays, got)
			require.Equal(t, tt.wantText, lifecycle.ExpirationText(got))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Pendente", lifecycle.StatusLabel(entity.PermitStatusPending))
	require.Equal(t, "Válido", lifecycle.StatusLabel(entity.PermitStatusValid))
	require.Equal(t, "Vencendo", lifecycle.StatusLabel(entity.PermitStatusExpiring))
	require.Equal(t, "Vencido", lifecycle.StatusLabel(entity.PermitStatusExpired))
}

func ptr[T any](v T) *T {
	return &v
}
