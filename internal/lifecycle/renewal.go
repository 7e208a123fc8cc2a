package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Stage uint8

const (
	StageOpening Stage = iota + 1
	StageOperating
	StageRenewing
)

func (s Stage) String() string {
	switch s {
	case StageOpening:
		return "Em Abertura"
	case StageOperating:
		return "Em Funcionamento"
	case StageRenewing:
		return "Em Renovação"
	default:
		return fmt.Sprintf("Stage(%d)", s)
	}
}

// StageOf infers the stage from the permit data. Renewing is a mode the caller
// opens explicitly, it is never stored.
func StageOf(p entity.Permit, renewing bool) Stage {
	if p.IssueDate == nil {
		return StageOpening
	}

	if renewing {
		return StageRenewing
	}

	return StageOperating
}

type Field string

const (
	FieldCompany          Field = "clienteId"
	FieldType             Field = "type"
	FieldRequestDate      Field = "requestDate"
	FieldIssueDate        Field = "issueDate"
	FieldExpirationDate   Field = "expirationDate"
	FieldProcessingStatus Field = "processingStatus"
	FieldNotes            Field = "notes"
)

var editable = map[Stage][]Field{
	StageOpening:   {FieldType, FieldRequestDate, FieldProcessingStatus, FieldNotes},
	StageOperating: {FieldType, FieldRequestDate, FieldIssueDate, FieldExpirationDate, FieldProcessingStatus, FieldNotes},
	StageRenewing:  {FieldRequestDate, FieldNotes},
}

func EditableFields(s Stage) []Field {
	return slices.Clone(editable[s])
}

func CanEdit(s Stage, f Field) bool {
	return slices.Contains(editable[s], f)
}

// Transition is one of FinalizeOpening, StartRenewal, RenewalUpdate, FinalizeRenewal.
type Transition interface {
	from() Stage
	apply(p entity.Permit, now time.Time) (entity.Permit, Stage, error)
}

// FinalizeOpening issues an opening permit.
type FinalizeOpening struct {
	ExpirationDate *time.Time
}

// StartRenewal switches an operating permit to renewing mode without touching data.
type StartRenewal struct{}

// RenewalUpdate records renewal progress and keeps the current expiration date.
type RenewalUpdate struct {
	RequestDate *time.Time
}

// FinalizeRenewal replaces the expiration date and closes the renewal.
type FinalizeRenewal struct {
	ExpirationDate *time.Time
}

func (FinalizeOpening) from() Stage { return StageOpening }
func (StartRenewal) from() Stage    { return StageOperating }
func (RenewalUpdate) from() Stage   { return StageRenewing }
func (FinalizeRenewal) from() Stage { return StageRenewing }

func (t FinalizeOpening) apply(p entity.Permit, now time.Time) (entity.Permit, Stage, error) {
	if t.ExpirationDate == nil {
		return p, StageOpening, expirationRequired()
	}

	issued := now
	exp := *t.ExpirationDate
	p.IssueDate = &issued
	p.ExpirationDate = &exp
	p.ProcessingStatus = ptr(entity.ProcessingStatusLaunched)

	return p, StageOperating, nil
}

func (StartRenewal) apply(p entity.Permit, _ time.Time) (entity.Permit, Stage, error) {
	return p, StageRenewing, nil
}

func (t RenewalUpdate) apply(p entity.Permit, _ time.Time) (entity.Permit, Stage, error) {
	if t.RequestDate != nil {
		p.RequestDate = *t.RequestDate
	}

	p.ProcessingStatus = ptr(entity.ProcessingStatusRenewing)

	return p, StageOperating, nil
}

func (t FinalizeRenewal) apply(p entity.Permit, _ time.Time) (entity.Permit, Stage, error) {
	if t.ExpirationDate == nil {
		return p, StageRenewing, expirationRequired()
	}

	exp := *t.ExpirationDate
	p.ExpirationDate = &exp
	p.ProcessingStatus = ptr(entity.ProcessingStatusLaunched)

	return p, StageOperating, nil
}

// Apply runs t against a permit in stage s. On error the permit is returned
// unchanged together with s.
func Apply(p entity.Permit, s Stage, t Transition, now time.Time) (entity.Permit, Stage, error) {
	if t.from() != s {
		return p, s, fmt.Errorf("%w: %T from %s", entity.ErrInvalidTransition, t, s)
	}

	next, stage, err := t.apply(p, now)
	if err != nil {
		return p, s, err
	}

	return Refresh(next, now), stage, nil
}

func expirationRequired() error {
	return entity.NewValidationError(entity.ErrExpirationRequired, string(FieldExpirationDate), "Informe a data de vencimento")
}

func ptr[T any](v T) *T {
	return &v
}
