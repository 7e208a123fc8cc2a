package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
)

func TestStageOf(t *testing.T) {
	t.Parallel()

	now := time.Now()

	require.Equal(t, lifecycle.StageOpening, lifecycle.StageOf(entity.Permit{}, true))
	require.Equal(t, lifecycle.StageOperating, lifecycle.StageOf(entity.Permit{IssueDate: &now}, false))
	require.Equal(t, lifecycle.StageRenewing, lifecycle.StageOf(entity.Permit{IssueDate: &now}, true))
	require.Equal(t, "Em Renovação", lifecycle.StageRenewing.String())
}

func TestEditableFields(t *testing.T) {
	t.Parallel()

	require.False(t, lifecycle.CanEdit(lifecycle.StageOpening, lifecycle.FieldCompany))
	require.True(t, lifecycle.CanEdit(lifecycle.StageOpening, lifecycle.FieldProcessingStatus))
	require.False(t, lifecycle.CanEdit(lifecycle.StageOpening, lifecycle.FieldExpirationDate))
	require.True(t, lifecycle.CanEdit(lifecycle.StageOperating, lifecycle.FieldExpirationDate))
	require.False(t, lifecycle.CanEdit(lifecycle.StageOperating, lifecycle.FieldCompany))
	require.ElementsMatch(t,
		[]lifecycle.Field{lifecycle.FieldRequestDate, lifecycle.FieldNotes},
		lifecycle.EditableFields(lifecycle.StageRenewing))
}

func TestApply(t *testing.T) { //nolint:funlen
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	oldExp := now.AddDate(0, 0, 10)
	newExp := now.AddDate(1, 0, 0)
	newRequest := now.AddDate(0, 0, -2)
	issued := now.AddDate(-1, 0, 0)
	awaiting := entity.ProcessingStatusAwaitingAgency

	opening := entity.Permit{
		Type:             entity.PermitTypeSanitary,
		RequestDate:      now.AddDate(0, -1, 0),
		ProcessingStatus: &awaiting,
		Notes:            "nota",
	}
	operating := entity.Permit{
		Type:           entity.PermitTypeSanitary,
		RequestDate:    now.AddDate(-1, -1, 0),
		IssueDate:      &issued,
		ExpirationDate: &oldExp,
	}

	tests := []struct {
		name       string
		permit     entity.Permit
		stage      lifecycle.Stage
		transition lifecycle.Transition
		wantStage  lifecycle.Stage
		wantErr    error
		check      func(t *testing.T, got entity.Permit)
	}{
		{
			name:       "finalize opening",
			permit:     opening,
			stage:      lifecycle.StageOpening,
			transition: lifecycle.FinalizeOpening{ExpirationDate: &newExp},
			wantStage:  lifecycle.StageOperating,
			check: func(t *testing.T, got entity.Permit) {
				t.Helper()
				require.Equal(t, now, *got.IssueDate)
				require.Equal(t, newExp, *got.ExpirationDate)
				require.Equal(t, entity.ProcessingStatusLaunched, *got.ProcessingStatus)
				require.Equal(t, entity.PermitStatusValid, got.Status)
				require.Equal(t, "nota", got.Notes)
			},
		},
		{
			name:       "finalize opening without expiration",
			permit:     opening,
			stage:      lifecycle.StageOpening,
			transition: lifecycle.FinalizeOpening{},
			wantStage:  lifecycle.StageOpening,
			wantErr:    entity.ErrExpirationRequired,
			check: func(t *testing.T, got entity.Permit) {
				t.Helper()
				require.Equal(t, opening, got)
			},
		},
		{
			name:       "start renewal does not mutate",
			permit:     operating,
			stage:      lifecycle.StageOperating,
			transition: lifecycle.StartRenewal{},
			wantStage:  lifecycle.StageRenewing,
			check: func(t *testing.T, got entity.Permit) {
				t.Helper()
				want := operating
				want.Status = entity.PermitStatusExpiring
				require.Equal(t, want, got)
			},
		},
		{
			name:       "renewal update keeps expiration",
			permit:     operating,
			stage:      lifecycle.StageRenewing,
			transition: lifecycle.RenewalUpdate{RequestDate: &newRequest},
			wantStage:  lifecycle.StageOperating,
			check: func(t *testing.T, got entity.Permit) {
				t.Helper()
				require.Equal(t, oldExp, *got.ExpirationDate)
				require.Equal(t, newRequest, got.RequestDate)
				require.Equal(t, entity.ProcessingStatusRenewing, *got.ProcessingStatus)
			},
		},
		{
			name:       "finalize renewal replaces expiration",
			permit:     operating,
			stage:      lifecycle.StageRenewing,
			transition: lifecycle.FinalizeRenewal{ExpirationDate: &newExp},
			wantStage:  lifecycle.StageOperating,
			check: func(t *testing.T, got entity.Permit) {
				t.Helper()
				require.Equal(t, newExp, *got.ExpirationDate)
				require.Equal(t, issued, *got.IssueDate)
				require.Equal(t, entity.ProcessingStatusLaunched, *got.ProcessingStatus)
				require.Equal(t, entity.PermitStatusValid, got.Status)
			},
		},
		{
			name:       "finalize renewal without expiration",
			permit:     operating,
			stage:      lifecycle.StageRenewing,
			transition: lifecycle.FinalizeRenewal{},
			wantStage:  lifecycle.StageRenewing,
			wantErr:    entity.ErrExpirationRequired,
			check: func(t *testing.T, got entity.Permit) {
				t.Helper()
				require.Equal(t, oldExp, *got.ExpirationDate)
			},
		},
		{
			name:       "renewal from opening",
			permit:     opening,
			stage:      lifecycle.StageOpening,
			transition: lifecycle.StartRenewal{},
			wantStage:  lifecycle.StageOpening,
			wantErr:    entity.ErrInvalidTransition,
			check:      func(*testing.T, entity.Permit) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, stage, err := lifecycle.Apply(tt.permit, tt.stage, tt.transition, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.wantStage, stage)
			tt.check(t, got)
		})
	}
}

func TestApply_MissingExpirationIsFieldError(t *testing.T) {
	t.Parallel()

	_, _, err := lifecycle.Apply(entity.Permit{}, lifecycle.StageOpening, lifecycle.FinalizeOpening{}, time.Now())

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "expirationDate")
}
