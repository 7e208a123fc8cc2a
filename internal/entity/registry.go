package entity

// RegistryCompany is a company record returned by the national tax registry.
type RegistryCompany struct {
	CNPJ                string             `json:"cnpj"`
	Status              string             `json:"status"`
	LegalName           string             `json:"nome"`
	TradeName           string             `json:"fantasia"`
	State               string             `json:"uf"`
	City                string             `json:"municipio"`
	Situation           string             `json:"situacao,omitempty"`
	MainActivities      []RegistryActivity `json:"atividade_principal"`
	SecondaryActivities []RegistryActivity `json:"atividades_secundarias"`
}

type RegistryActivity struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// CompanyInput seeds a company form from the registry record.
func (c RegistryCompany) CompanyInput() CompanyInput {
	in := CompanyInput{
		CNPJ:      c.CNPJ,
		LegalName: c.LegalName,
		TradeName: c.TradeName,
		State:     c.State,
		City:      c.City,
	}

	if len(c.MainActivities) > 0 {
		in.MainActivityCode = c.MainActivities[0].Code
		in.MainActivityDescription = c.MainActivities[0].Text
	}

	return in
}

type City struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}
