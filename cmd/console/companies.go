package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/form"
	"github.com/samandr77/microservices/alvaras/internal/service"
)

func runCompanies(ctx context.Context, a *app, args []string) error {
	fs := newFlags("clientes", a.out)
	query := fs.String("q", "", "busca por nome ou CNPJ")

	if err := fs.Parse(args); err != nil {
		return err
	}

	_, err := a.companies.Load(ctx)
	if err != nil {
		return err
	}

	return printCompanies(a.out, a.companies.Search(*query))
}

func runCompanyCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlags("cliente-novo", a.out)
	cnpj := fs.String("cnpj", "", "CNPJ do cliente")
	types := fs.String("alvaras", "", "tipos de alvará permitidos, separados por vírgula (nome ou número)")
	manual := fs.Bool("manual", false, "não consultar a Receita Federal")
	legalName := fs.String("razao-social", "", "razão social")
	tradeName := fs.String("nome-fantasia", "", "nome fantasia")
	uf := fs.String("uf", "", "UF")
	city := fs.String("municipio", "", "município")

	if err := fs.Parse(args); err != nil {
		return err
	}

	permitTypes, err := parsePermitTypes(*types)
	if err != nil {
		return err
	}

	f := form.NewCompanyForm(a.gw.Registry, a.companies, a.gw.Activities)
	f.SetPermitTypes(permitTypes...)

	if *manual {
		f.Input.CNPJ = service.CleanCNPJ(*cnpj)
	} else {
		rc, err := f.Seed(ctx, *cnpj)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "Receita Federal: %s (%s)\n", rc.LegalName, rc.Situation)
	}

	override(&f.Input.LegalName, *legalName)
	override(&f.Input.TradeName, *tradeName)
	override(&f.Input.State, strings.ToUpper(*uf))
	override(&f.Input.City, *city)

	c, err := f.Submit(ctx)
	if c.ID.IsNil() {
		return err
	}

	fmt.Fprintf(a.out, "Cliente %s cadastrado (%s).\n", c.DisplayName(), c.ID)

	if len(f.Secondary) > 0 {
		fmt.Fprintf(a.out, "%d atividades secundárias importadas.\n", len(f.Secondary))
	}

	if err != nil {
		return fmt.Errorf("cliente salvo, mas houve falha nas atividades: %w", err)
	}

	return nil
}

func runCompanyDelete(ctx context.Context, a *app, args []string) error {
	fs := newFlags("cliente-excluir", a.out)
	rawID := fs.String("id", "", "id do cliente")

	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID("id", *rawID)
	if err != nil {
		return err
	}

	err = a.companies.Delete(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Cliente excluído.")

	return nil
}

func runActivities(ctx context.Context, a *app, args []string) error {
	fs := newFlags("atividades", a.out)
	rawCompany := fs.String("cliente", "", "id do cliente")
	code := fs.String("codigo", "", "código CNAE da atividade a incluir")
	description := fs.String("descricao", "", "descrição da atividade a incluir")
	remove := fs.String("excluir", "", "id da atividade a excluir")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *remove != "" {
		id, err := parseID("excluir", *remove)
		if err != nil {
			return err
		}

		err = a.gw.Activities.Delete(ctx, id)
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, "Atividade excluída.")

		return nil
	}

	companyID, err := parseID("cliente", *rawCompany)
	if err != nil {
		return err
	}

	if *code != "" || *description != "" {
		in := entity.ActivityInput{Code: strings.TrimSpace(*code), Description: strings.TrimSpace(*description)}

		err = service.ValidateActivity(in)
		if err != nil {
			return err
		}

		_, err = a.gw.Activities.Create(ctx, companyID, in)
		if err != nil {
			return err
		}
	}

	activities, err := a.gw.Activities.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tCÓDIGO\tDESCRIÇÃO")

	for _, act := range activities {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", act.ID, act.Code, act.Description)
	}

	return tw.Flush()
}

func runCities(ctx context.Context, a *app, args []string) error {
	fs := newFlags("cidades", a.out)
	uf := fs.String("uf", "", "sigla da UF")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(strings.TrimSpace(*uf)) != 2 {
		return errors.New("informe a UF com duas letras")
	}

	cities, err := a.gw.Registry.Cities(ctx, strings.ToUpper(*uf))
	if err != nil {
		return err
	}

	for _, c := range cities {
		fmt.Fprintln(a.out, c.Name)
	}

	return nil
}

func override(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
