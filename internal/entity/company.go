package entity

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Company struct {
	ID                      uuid.UUID    `json:"id"`
	CNPJ                    string       `json:"cnpj"`
	LegalName               string       `json:"razaoSocial"`
	TradeName               string       `json:"nomeFantasia"`
	State                   string       `json:"uf"`
	City                    string       `json:"municipio"`
	MainActivityCode        string       `json:"atividadePrincipalCodigo"`
	MainActivityDescription string       `json:"atividadePrincipalDescricao"`
	PermitTypes             []PermitType `json:"alvaras"`
	CreatedAt               time.Time    `json:"criadoEm"`
	UpdatedAt               time.Time    `json:"atualizadoEm"`
}

// Allows reports whether t is in the company's permit allow-list.
func (c Company) Allows(t PermitType) bool {
	return slices.Contains(c.PermitTypes, t)
}

// DisplayName prefers the trade name.
func (c Company) DisplayName() string {
	if c.TradeName != "" {
		return c.TradeName
	}

	return c.LegalName
}

type CompanyInput struct {
	CNPJ                    string       `json:"cnpj"`
	LegalName               string       `json:"razaoSocial"`
	TradeName               string       `json:"nomeFantasia"`
	State                   string       `json:"uf"`
	City                    string       `json:"municipio"`
	MainActivityCode        string       `json:"atividadePrincipalCodigo"`
	MainActivityDescription string       `json:"atividadePrincipalDescricao"`
	PermitTypes             []PermitType `json:"alvaras"`
}

func (in CompanyInput) Apply(c Company) Company {
	c.CNPJ = in.CNPJ
	c.LegalName = in.LegalName
	c.TradeName = in.TradeName
	c.State = in.State
	c.City = in.City
	c.MainActivityCode = in.MainActivityCode
	c.MainActivityDescription = in.MainActivityDescription
	c.PermitTypes = in.PermitTypes

	return c
}

type Activity struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"clienteId"`
	Code        string    `json:"codigo"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"criadoEm"`
	UpdatedAt   time.Time `json:"atualizadoEm"`
}

type ActivityInput struct {
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
}
