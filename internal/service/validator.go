package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

const (
	EmailMaxLen       = 255
	PasswordMinLen    = 8
	FullNameMaxLen    = 120
	DocumentNameMaxLn = 255
	passwordSpecials  = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type PasswordValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidatePassword runs every rule and collects all violations.
func ValidatePassword(password string) PasswordValidation {
	var (
		upper, lower, digit, special bool
		errs                         = []string{}
	)

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	if utf8.RuneCountInString(password) < PasswordMinLen {
		errs = append(errs, fmt.Sprintf("A senha deve ter pelo menos %d caracteres", PasswordMinLen))
	}

	if !upper {
		errs = append(errs, "A senha deve conter pelo menos uma letra maiúscula")
	}

	if !lower {
		errs = append(errs, "A senha deve conter pelo menos uma letra minúscula")
	}

	if !digit {
		errs = append(errs, "A senha deve conter pelo menos um número")
	}

	if !special {
		errs = append(errs, "A senha deve conter pelo menos um caractere especial")
	}

	return PasswordValidation{IsValid: len(errs) == 0, Errors: errs}
}

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen || !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return entity.NewValidationError(entity.ErrIncorrectRequestBody, "email", "E-mail inválido")
	}

	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateRegistration(email, password, fullName string) error {
	verr := &entity.ValidationError{}

	if err := ValidateEmail(email); err != nil {
		verr.Add("email", "E-mail inválido")
	}

	if pv := ValidatePassword(password); !pv.IsValid {
		verr.Add("password", "Senha fraca: "+strings.Join(pv.Errors, ", "))
	}

	if utf8.RuneCountInString(fullName) > FullNameMaxLen {
		verr.Add("fullName", "Nome muito longo")
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

func ValidateCompany(in entity.CompanyInput) error {
	verr := &entity.ValidationError{}

	if !IsValidCNPJ(in.CNPJ) {
		verr.Add("cnpj", "CNPJ inválido")
	}

	if strings.TrimSpace(in.LegalName) == "" {
		verr.Add("razaoSocial", "Razão social é obrigatória")
	}

	if in.State != "" && utf8.RuneCountInString(in.State) != 2 {
		verr.Add("uf", "UF inválida")
	}

	for _, t := range in.PermitTypes {
		if !t.IsValid() {
			verr.Add("alvaras", fmt.Sprintf("Tipo de alvará desconhecido: %s", t))
			break
		}
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

func ValidatePermit(in entity.PermitInput) error {
	verr := &entity.ValidationError{}

	if in.CompanyID.IsNil() {
		verr.Add("clienteId", "Selecione um cliente para continuar.")
	}

	if in.Type == "" {
		verr.Add("type", "Selecione um tipo de alvará para continuar.")
	} else if !in.Type.IsValid() {
		verr.Add("type", fmt.Sprintf("Tipo de alvará desconhecido: %s", in.Type))
	}

	if in.RequestDate.IsZero() {
		verr.Add("requestDate", "Data de solicitação é obrigatória")
	}

	if in.ProcessingStatus != nil && !in.ProcessingStatus.IsValid() {
		verr.Add("processingStatus", "Status de processamento inválido")
	}

	if in.ExpirationDate != nil && in.IssueDate == nil {
		verr.Add("issueDate", "Data de emissão é obrigatória quando há vencimento")
	}

	if in.ExpirationDate != nil && in.IssueDate != nil && dateOnly(*in.ExpirationDate).Before(dateOnly(*in.IssueDate)) {
		verr.Add("expirationDate", "Vencimento anterior à emissão")
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

func ValidateActivity(in entity.ActivityInput) error {
	verr := &entity.ValidationError{}

	if strings.TrimSpace(in.Code) == "" {
		verr.Add("codigo", "Código é obrigatório")
	}

	if strings.TrimSpace(in.Description) == "" {
		verr.Add("descricao", "Descrição é obrigatória")
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

func ValidateDocument(in entity.DocumentInput) error {
	verr := &entity.ValidationError{}

	if name := strings.TrimSpace(in.Name); name == "" || len(name) > DocumentNameMaxLn {
		verr.Add("nomeDocumento", "Nome do documento é obrigatório")
	}

	if in.FileName == "" || in.Content == nil {
		verr.Add("file", "Arquivo é obrigatório")
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
