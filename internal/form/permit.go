// Package form implements the permit and company editing workflows of the
// console client. A form validates locally before any remote call and keeps
// its data when the remote call fails.
package form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
	"github.com/samandr77/microservices/alvaras/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=permit.go -destination=../mocks/form.go -package=mocks -typed

var ErrFieldLocked = errors.New("field is locked")

type PermitSaver interface {
	Add(ctx context.Context, in entity.PermitInput) (entity.Permit, error)
	Update(ctx context.Context, id uuid.UUID, in entity.PermitInput) (entity.Permit, error)
}

type PermitForm struct {
	saver   PermitSaver
	company entity.Company
	author  string
	now     func() time.Time

	saved   entity.Permit
	data    entity.PermitInput
	stage   lifecycle.Stage
	pending string
}

func newPermitForm(saver PermitSaver, company entity.Company, author string, now func() time.Time) *PermitForm {
	if now == nil {
		now = time.Now
	}

	return &PermitForm{
		saver:   saver,
		company: company,
		author:  author,
		now:     now,
	}
}

// NewCreate starts a permit for company in the opening stage.
func NewCreate(saver PermitSaver, company entity.Company, author string, now func() time.Time) *PermitForm {
	f := newPermitForm(saver, company, author, now)

	y, m, d := f.now().Date()

	f.stage = lifecycle.StageOpening
	f.data = entity.PermitInput{
		CompanyID:        company.ID,
		RequestDate:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		ProcessingStatus: ptr(entity.ProcessingStatusLaunched),
	}

	if len(company.PermitTypes) == 1 {
		f.data.Type = company.PermitTypes[0]
	}

	return f
}

func NewEdit(saver PermitSaver, permit entity.Permit, company entity.Company, author string, now func() time.Time) *PermitForm {
	f := newPermitForm(saver, company, author, now)
	f.saved = permit
	f.data = permit.Input()
	f.stage = lifecycle.StageOf(permit, false)

	return f
}

// NewRenewal opens an issued permit in renewal mode.
func NewRenewal(saver PermitSaver, permit entity.Permit, company entity.Company, author string, now func() time.Time) (*PermitForm, error) {
	f := NewEdit(saver, permit, company, author, now)

	_, stage, err := lifecycle.Apply(permit, f.stage, lifecycle.StartRenewal{}, f.now())
	if err != nil {
		return nil, err
	}

	f.stage = stage

	return f, nil
}

func (f *PermitForm) Stage() lifecycle.Stage {
	return f.stage
}

func (f *PermitForm) Data() entity.PermitInput {
	return f.data
}

func (f *PermitForm) Saved() entity.Permit {
	return f.saved
}

func (f *PermitForm) IsNew() bool {
	return f.saved.ID.IsNil()
}

// AllowedTypes lists the types offered for the company. An empty allow-list
// offers every type.
func (f *PermitForm) AllowedTypes() []entity.PermitType {
	if len(f.company.PermitTypes) == 0 {
		return entity.PermitTypes
	}

	return f.company.PermitTypes
}

func (f *PermitForm) checkEditable(field lifecycle.Field) error {
	if !lifecycle.CanEdit(f.stage, field) {
		return fmt.Errorf("%w: %s in stage %s", ErrFieldLocked, field, f.stage)
	}

	return nil
}

func (f *PermitForm) SetType(t entity.PermitType) error {
	if err := f.checkEditable(lifecycle.FieldType); err != nil {
		return err
	}

	f.data.Type = t

	return nil
}

func (f *PermitForm) SetRequestDate(d time.Time) error {
	if err := f.checkEditable(lifecycle.FieldRequestDate); err != nil {
		return err
	}

	f.data.RequestDate = d

	return nil
}

func (f *PermitForm) SetIssueDate(d *time.Time) error {
	if err := f.checkEditable(lifecycle.FieldIssueDate); err != nil {
		return err
	}

	f.data.IssueDate = d

	return nil
}

func (f *PermitForm) SetExpirationDate(d *time.Time) error {
	if err := f.checkEditable(lifecycle.FieldExpirationDate); err != nil {
		return err
	}

	f.data.ExpirationDate = d

	return nil
}

func (f *PermitForm) SetProcessingStatus(s entity.ProcessingStatus) error {
	if err := f.checkEditable(lifecycle.FieldProcessingStatus); err != nil {
		return err
	}

	f.data.ProcessingStatus = &s

	return nil
}

// AddNote buffers a note. Buffered notes reach the permit on the next
// successful save.
func (f *PermitForm) AddNote(text string) {
	f.pending = lifecycle.AppendNote(f.pending, text, f.author, f.now())
}

func (f *PermitForm) PendingNotes() []string {
	return lifecycle.SplitNotes(f.pending)
}

// Notes lists saved and buffered notes in insertion order.
func (f *PermitForm) Notes() []string {
	return lifecycle.SplitNotes(f.mergedNotes())
}

func (f *PermitForm) mergedNotes() string {
	switch {
	case f.pending == "":
		return f.data.Notes
	case f.data.Notes == "":
		return f.pending
	default:
		return f.data.Notes + lifecycle.NoteSeparator + f.pending
	}
}

func (f *PermitForm) validate(in entity.PermitInput) error {
	err := service.ValidatePermit(in)

	var verr *entity.ValidationError

	switch {
	case err == nil:
		verr = &entity.ValidationError{}
	case errors.As(err, &verr):
	default:
		return err
	}

	if in.Type != "" && len(f.company.PermitTypes) > 0 && !f.company.Allows(in.Type) {
		verr.Err = entity.ErrPermitTypeNotAllowed
		verr.Add(string(lifecycle.FieldType), "Tipo de alvará não permitido para este cliente")
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

// Submit saves the form as it is.
func (f *PermitForm) Submit(ctx context.Context) (entity.Permit, error) {
	in := f.data
	in.Notes = f.mergedNotes()

	return f.persist(ctx, in, lifecycle.StageOf(in.Apply(f.saved), f.stage == lifecycle.StageRenewing))
}

func (f *PermitForm) FinalizeOpening(ctx context.Context, expirationDate *time.Time) (entity.Permit, error) {
	return f.transition(ctx, lifecycle.FinalizeOpening{ExpirationDate: expirationDate})
}

// RenewalUpdate records renewal progress keeping the current expiration date.
func (f *PermitForm) RenewalUpdate(ctx context.Context) (entity.Permit, error) {
	rd := f.data.RequestDate
	return f.transition(ctx, lifecycle.RenewalUpdate{RequestDate: &rd})
}

func (f *PermitForm) FinalizeRenewal(ctx context.Context, expirationDate *time.Time) (entity.Permit, error) {
	return f.transition(ctx, lifecycle.FinalizeRenewal{ExpirationDate: expirationDate})
}

func (f *PermitForm) transition(ctx context.Context, t lifecycle.Transition) (entity.Permit, error) {
	candidate := f.data.Apply(f.saved)
	candidate.Notes = f.mergedNotes()

	next, stage, err := lifecycle.Apply(candidate, f.stage, t, f.now())
	if err != nil {
		return entity.Permit{}, err
	}

	return f.persist(ctx, next.Input(), stage)
}

// persist validates in and saves it. The form only changes after the remote
// call succeeds.
func (f *PermitForm) persist(ctx context.Context, in entity.PermitInput, stage lifecycle.Stage) (entity.Permit, error) {
	err := f.validate(in)
	if err != nil {
		return entity.Permit{}, err
	}

	var saved entity.Permit

	if f.IsNew() {
		saved, err = f.saver.Add(ctx, in)
	} else {
		saved, err = f.saver.Update(ctx, f.saved.ID, in)
	}

	if err != nil {
		return entity.Permit{}, err
	}

	f.saved = saved
	f.data = saved.Input()
	f.pending = ""
	f.stage = stage

	return saved, nil
}

func ptr[T any](v T) *T {
	return &v
}
