package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/form"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
	"github.com/samandr77/microservices/alvaras/internal/store"
)

const upcomingLimit = 5

var tabs = map[string]store.Tab{
	"":              store.TabAll,
	"todos":         store.TabAll,
	"abertura":      store.TabOpening,
	"funcionamento": store.TabOperating,
}

func runDashboard(ctx context.Context, a *app, _ []string) error {
	companies, err := a.companies.Load(ctx)
	if err != nil {
		return err
	}

	_, err = a.permits.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Clientes: %d\n", len(companies))
	printStats(a.out, "Alvarás", a.permits.Stats())

	_, opening := a.permits.Opening()
	_, operating := a.permits.Operating()

	printStats(a.out, "Em abertura", opening)
	printStats(a.out, "Em funcionamento", operating)

	upcoming := a.permits.Upcoming(upcomingLimit)
	if len(upcoming) == 0 {
		fmt.Fprintln(a.out, "\nNenhum alvará vencendo.")
		return nil
	}

	fmt.Fprintln(a.out, "\nPróximos vencimentos:")

	tw := newTable(a.out)
	for _, u := range upcoming {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
			u.Permit.CompanyName, u.Permit.Type, formatDate(u.Permit.ExpirationDate), u.ExpirationText)
	}

	return tw.Flush()
}

func runPermits(ctx context.Context, a *app, args []string) error {
	fs := newFlags("alvaras", a.out)
	tabName := fs.String("aba", "todos", "todos, abertura ou funcionamento")
	query := fs.String("q", "", "busca por cliente, CNPJ ou tipo")
	rawStatus := fs.String("status", "", "pending, valid, expiring ou expired")
	rawCompany := fs.String("cliente", "", "id do cliente")

	if err := fs.Parse(args); err != nil {
		return err
	}

	tab, ok := tabs[strings.ToLower(*tabName)]
	if !ok {
		return fmt.Errorf("aba inválida: %s", *tabName)
	}

	status := entity.PermitStatus(strings.ToLower(*rawStatus))
	if status != "" && !status.IsValid() {
		return fmt.Errorf("status inválido: %s", *rawStatus)
	}

	var err error

	if *rawCompany != "" {
		var companyID uuid.UUID

		companyID, err = parseID("cliente", *rawCompany)
		if err != nil {
			return err
		}

		_, err = a.permits.LoadByCompany(ctx, companyID)
	} else {
		_, err = a.permits.Load(ctx)
	}

	if err != nil {
		return err
	}

	permits := a.permits.Filter(tab, *query, status)

	_, stats := a.permits.Tab(tab)
	printStats(a.out, "Alvarás", stats)
	fmt.Fprintln(a.out)

	return printPermits(a.out, permits, a.now())
}

type permitFlags struct {
	permitType  *string
	requestDate *string
	issueDate   *string
	expiration  *string
	situation   *string
	note        *string
}

func (p permitFlags) apply(f *form.PermitForm) error {
	var errs []error

	if *p.permitType != "" {
		t, err := parsePermitType(*p.permitType)
		if err != nil {
			return err
		}

		errs = append(errs, f.SetType(t))
	}

	if *p.requestDate != "" {
		d, err := parseDate(*p.requestDate)
		if err != nil {
			return err
		}

		errs = append(errs, f.SetRequestDate(d))
	}

	if p.issueDate != nil && *p.issueDate != "" {
		d, err := parseOptionalDate(*p.issueDate)
		if err != nil {
			return err
		}

		errs = append(errs, f.SetIssueDate(d))
	}

	if p.expiration != nil && *p.expiration != "" {
		d, err := parseOptionalDate(*p.expiration)
		if err != nil {
			return err
		}

		errs = append(errs, f.SetExpirationDate(d))
	}

	if *p.situation != "" {
		errs = append(errs, f.SetProcessingStatus(entity.ProcessingStatus(*p.situation)))
	}

	f.AddNote(*p.note)

	return errors.Join(errs...)
}

func runPermitCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlags("alvara-novo", a.out)
	rawCompany := fs.String("cliente", "", "id do cliente")
	flags := permitFlags{
		permitType:  fs.String("tipo", "", "tipo de alvará (nome ou número)"),
		requestDate: fs.String("solicitacao", "", "data de solicitação dd/mm/aaaa (padrão: hoje)"),
		situation:   fs.String("situacao", "", "lançado, aguardando_cliente ou aguardando_orgao"),
		note:        fs.String("nota", "", "observação inicial"),
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	companyID, err := parseID("cliente", *rawCompany)
	if err != nil {
		return err
	}

	company, err := a.company(ctx, companyID)
	if err != nil {
		return err
	}

	f := form.NewCreate(a.permits, company, a.author(), a.now)

	err = flags.apply(f)
	if err != nil {
		return err
	}

	p, err := f.Submit(ctx)
	if err != nil {
		return err
	}

	p.CompanyName = company.DisplayName()

	return printPermit(a.out, p, f.Stage(), a.now())
}

func runPermitEdit(ctx context.Context, a *app, args []string) error {
	fs := newFlags("alvara-editar", a.out)
	rawID := fs.String("id", "", "id do alvará")
	flags := permitFlags{
		permitType:  fs.String("tipo", "", "tipo de alvará (nome ou número)"),
		requestDate: fs.String("solicitacao", "", "data de solicitação dd/mm/aaaa"),
		issueDate:   fs.String("emissao", "", "data de emissão dd/mm/aaaa"),
		expiration:  fs.String("vencimento", "", "data de vencimento dd/mm/aaaa"),
		situation:   fs.String("situacao", "", "situação do processo"),
		note:        fs.String("nota", "", "observação"),
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	p, company, err := a.permit(ctx, *rawID)
	if err != nil {
		return err
	}

	f := form.NewEdit(a.permits, p, company, a.author(), a.now)

	err = flags.apply(f)
	if err != nil {
		return err
	}

	saved, err := f.Submit(ctx)
	if err != nil {
		return err
	}

	saved.CompanyName = company.DisplayName()

	return printPermit(a.out, saved, f.Stage(), a.now())
}

func runPermitFinalize(ctx context.Context, a *app, args []string) error {
	fs := newFlags("alvara-finalizar", a.out)
	rawID := fs.String("id", "", "id do alvará")
	rawExpiration := fs.String("vencimento", "", "data de vencimento dd/mm/aaaa")
	note := fs.String("nota", "", "observação")

	if err := fs.Parse(args); err != nil {
		return err
	}

	expiration, err := parseOptionalDate(*rawExpiration)
	if err != nil {
		return err
	}

	p, company, err := a.permit(ctx, *rawID)
	if err != nil {
		return err
	}

	f := form.NewEdit(a.permits, p, company, a.author(), a.now)
	f.AddNote(*note)

	saved, err := f.FinalizeOpening(ctx, expiration)
	if err != nil {
		return err
	}

	saved.CompanyName = company.DisplayName()

	fmt.Fprintln(a.out, "Abertura finalizada.")

	return printPermit(a.out, saved, f.Stage(), a.now())
}

func runPermitRenew(ctx context.Context, a *app, args []string) error {
	fs := newFlags("alvara-renovar", a.out)
	rawID := fs.String("id", "", "id do alvará")
	rawRequest := fs.String("solicitacao", "", "nova data de solicitação dd/mm/aaaa")
	rawExpiration := fs.String("vencimento", "", "novo vencimento dd/mm/aaaa, finaliza a renovação")
	note := fs.String("nota", "", "observação")

	if err := fs.Parse(args); err != nil {
		return err
	}

	expiration, err := parseOptionalDate(*rawExpiration)
	if err != nil {
		return err
	}

	p, company, err := a.permit(ctx, *rawID)
	if err != nil {
		return err
	}

	f, err := form.NewRenewal(a.permits, p, company, a.author(), a.now)
	if err != nil {
		return err
	}

	if *rawRequest != "" {
		d, err := parseDate(*rawRequest)
		if err != nil {
			return err
		}

		err = f.SetRequestDate(d)
		if err != nil {
			return err
		}
	}

	f.AddNote(*note)

	var saved entity.Permit

	if expiration != nil {
		saved, err = f.FinalizeRenewal(ctx, expiration)
	} else {
		saved, err = f.RenewalUpdate(ctx)
	}

	if err != nil {
		return err
	}

	saved.CompanyName = company.DisplayName()

	if expiration != nil {
		fmt.Fprintln(a.out, "Renovação finalizada.")
	} else {
		fmt.Fprintln(a.out, "Renovação em andamento.")
	}

	return printPermit(a.out, saved, f.Stage(), a.now())
}

func runPermitNote(ctx context.Context, a *app, args []string) error {
	fs := newFlags("alvara-nota", a.out)
	rawID := fs.String("id", "", "id do alvará")
	text := fs.String("texto", "", "observação")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*text) == "" && fs.NArg() > 0 {
		*text = strings.Join(fs.Args(), " ")
	}

	p, company, err := a.permit(ctx, *rawID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(*text) == "" {
		return printPermit(a.out, p, lifecycle.StageOf(p, false), a.now())
	}

	f := form.NewEdit(a.permits, p, company, a.author(), a.now)
	f.AddNote(*text)

	_, err = f.Submit(ctx)
	if err != nil {
		return err
	}

	for _, n := range f.Notes() {
		fmt.Fprintln(a.out, n)
	}

	return nil
}

func runPermitDelete(ctx context.Context, a *app, args []string) error {
	fs := newFlags("alvara-excluir", a.out)
	rawID := fs.String("id", "", "id do alvará")

	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID("id", *rawID)
	if err != nil {
		return err
	}

	err = a.permits.Delete(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Alvará excluído.")

	return nil
}

func (a *app) company(ctx context.Context, id uuid.UUID) (entity.Company, error) {
	if c, ok := a.companies.ByID(id); ok {
		return c, nil
	}

	_, err := a.companies.Load(ctx)
	if err != nil {
		return entity.Company{}, err
	}

	c, ok := a.companies.ByID(id)
	if !ok {
		return entity.Company{}, fmt.Errorf("cliente %s: %w", id, entity.ErrNotFound)
	}

	return c, nil
}

func (a *app) permit(ctx context.Context, rawID string) (entity.Permit, entity.Company, error) {
	id, err := parseID("id", rawID)
	if err != nil {
		return entity.Permit{}, entity.Company{}, err
	}

	p, err := a.gw.Permits.Get(ctx, id)
	if err != nil {
		return entity.Permit{}, entity.Company{}, err
	}

	company, err := a.company(ctx, p.CompanyID)
	if err != nil {
		return entity.Permit{}, entity.Company{}, err
	}

	if p.CompanyName == "" {
		p.CompanyName = company.DisplayName()
	}

	return p, company, nil
}
