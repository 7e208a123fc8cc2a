package entity

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

type PermitType string

const (
	PermitTypeOperating      PermitType = "Alvará de Funcionamento"
	PermitTypeSanitary       PermitType = "Alvará Sanitário"
	PermitTypeFireDepartment PermitType = "Alvará de Bombeiros"
	PermitTypeAcousticReport PermitType = "Laudo Acústico"
	PermitTypeEnvironmental  PermitType = "Licenciamento Ambiental"
	PermitTypeCivilPolice    PermitType = "Alvará da Polícia Civil"
	PermitTypeSanitaryWaiver PermitType = "Dispensa de Alvará Sanitário"
)

var PermitTypes = []PermitType{
	PermitTypeOperating,
	PermitTypeSanitary,
	PermitTypeFireDepartment,
	PermitTypeAcousticReport,
	PermitTypeEnvironmental,
	PermitTypeCivilPolice,
	PermitTypeSanitaryWaiver,
}

func (t PermitType) IsValid() bool {
	return slices.Contains(PermitTypes, t)
}

type PermitStatus string

const (
	PermitStatusPending  PermitStatus = "pending"
	PermitStatusValid    PermitStatus = "valid"
	PermitStatusExpiring PermitStatus = "expiring"
	PermitStatusExpired  PermitStatus = "expired"
)

func (s PermitStatus) IsValid() bool {
	switch s {
	case PermitStatusPending, PermitStatusValid, PermitStatusExpiring, PermitStatusExpired:
		return true
	default:
		return false
	}
}

type ProcessingStatus string

const (
	ProcessingStatusLaunched       ProcessingStatus = "lançado"
	ProcessingStatusAwaitingClient ProcessingStatus = "aguardando_cliente"
	ProcessingStatusAwaitingAgency ProcessingStatus = "aguardando_orgao"
	ProcessingStatusRenewing       ProcessingStatus = "renovacao"
)

type ProcessingStatusOption struct {
	Value       ProcessingStatus `json:"value"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
}

// ProcessingStatusOptions are the values selectable while a permit is being opened.
var ProcessingStatusOptions = []ProcessingStatusOption{
	{Value: ProcessingStatusLaunched, Label: "Lançado", Description: "Alvará lançado no sistema"},
	{Value: ProcessingStatusAwaitingClient, Label: "Aguardando Cliente", Description: "Aguardando documentação do cliente"},
	{Value: ProcessingStatusAwaitingAgency, Label: "Aguardando Órgão", Description: "Aguardando resposta do órgão"},
}

func (s ProcessingStatus) IsValid() bool {
	if s == ProcessingStatusRenewing {
		return true
	}

	for _, o := range ProcessingStatusOptions {
		if o.Value == s {
			return true
		}
	}

	return false
}

func (s ProcessingStatus) Label() string {
	if s == ProcessingStatusRenewing {
		return "Em Renovação"
	}

	for _, o := range ProcessingStatusOptions {
		if o.Value == s {
			return o.Label
		}
	}

	return string(s)
}

type Permit struct {
	ID               uuid.UUID         `json:"id"`
	CompanyID        uuid.UUID         `json:"clienteId"`
	Type             PermitType        `json:"type"`
	RequestDate      time.Time         `json:"requestDate"`
	IssueDate        *time.Time        `json:"issueDate,omitempty"`
	ExpirationDate   *time.Time        `json:"expirationDate,omitempty"`
	ProcessingStatus *ProcessingStatus `json:"processingStatus,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	// Status is derived from the dates and never stored.
	Status           PermitStatus      `json:"status"`
	CompanyName      string            `json:"clienteNome,omitempty"`
	CompanyCNPJ      string            `json:"clienteCnpj,omitempty"`
	CreatedAt        time.Time         `json:"criadoEm"`
	UpdatedAt        time.Time         `json:"atualizadoEm"`
}

// PermitInput is the writable part of a permit.
type PermitInput struct {
	CompanyID        uuid.UUID         `json:"clienteId"`
	Type             PermitType        `json:"type"`
	RequestDate      time.Time         `json:"requestDate"`
	IssueDate        *time.Time        `json:"issueDate,omitempty"`
	ExpirationDate   *time.Time        `json:"expirationDate,omitempty"`
	ProcessingStatus *ProcessingStatus `json:"processingStatus,omitempty"`
	Notes            string            `json:"notes,omitempty"`
}

func (p Permit) Input() PermitInput {
	return PermitInput{
		CompanyID:        p.CompanyID,
		Type:             p.Type,
		RequestDate:      p.RequestDate,
		IssueDate:        p.IssueDate,
		ExpirationDate:   p.ExpirationDate,
		ProcessingStatus: p.ProcessingStatus,
		Notes:            p.Notes,
	}
}

func (in PermitInput) Apply(p Permit) Permit {
	p.CompanyID = in.CompanyID
	p.Type = in.Type
	p.RequestDate = in.RequestDate
	p.IssueDate = in.IssueDate
	p.ExpirationDate = in.ExpirationDate
	p.ProcessingStatus = in.ProcessingStatus
	p.Notes = in.Notes

	return p
}

type PermitStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Valid    int `json:"valid"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

func (s *PermitStats) Add(status PermitStatus) {
	s.Total++

	switch status {
	case PermitStatusPending:
		s.Pending++
	case PermitStatusValid:
		s.Valid++
	case PermitStatusExpiring:
		s.Expiring++
	case PermitStatusExpired:
		s.Expired++
	}
}

type PermitsFilter struct {
	CompanyID *uuid.UUID
	Types     []PermitType
	Search    string
	// Statuses is applied after the status is derived, not in SQL.
	Statuses []PermitStatus
	// ExpiresBefore selects issued permits expiring before the given time.
	ExpiresBefore *time.Time
}

type PermitEventType string

const (
	PermitEventCreated  PermitEventType = "created"
	PermitEventUpdated  PermitEventType = "updated"
	PermitEventDeleted  PermitEventType = "deleted"
	PermitEventExpiring PermitEventType = "expiring"
)

type PermitEvent struct {
	Type           PermitEventType `json:"type"`
	PermitID       uuid.UUID       `json:"permit_id"`
	CompanyID      uuid.UUID       `json:"company_id"`
	PermitType     PermitType      `json:"permit_type"`
	Status         PermitStatus    `json:"status"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	DaysLeft       *int            `json:"days_left,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

type CompanyCreatedEvent struct {
	CompanyID uuid.UUID `json:"company_id"`
	CNPJ      string    `json:"cnpj"`
}
