package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
	"github.com/samandr77/microservices/alvaras/internal/service"
)

const dateLayout = "02/01/2006"

var dateLayouts = []string{dateLayout, time.DateOnly}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func newFlags(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	return fs
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida %q, use dd/mm/aaaa", s)
}

// parseOptionalDate returns nil for an empty string.
func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil //nolint:nilnil
	}

	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func parseID(name, s string) (uuid.UUID, error) {
	id, err := uuid.FromString(strings.TrimSpace(s))
	if err != nil || id.IsNil() {
		return uuid.Nil, fmt.Errorf("-%s: identificador inválido %q", name, s)
	}

	return id, nil
}

func parsePermitTypes(s string) ([]entity.PermitType, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var types []entity.PermitType

	for _, part := range strings.Split(s, ",") {
		t, err := parsePermitType(part)
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return types, nil
}

// parsePermitType accepts the full name or its 1-based position in the type list.
func parsePermitType(s string) (entity.PermitType, error) {
	s = strings.TrimSpace(s)

	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && fmt.Sprint(n) == s {
		if n < 1 || n > len(entity.PermitTypes) {
			return "", fmt.Errorf("tipo de alvará inválido: %s", s)
		}

		return entity.PermitTypes[n-1], nil
	}

	for _, t := range entity.PermitTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}

	return "", fmt.Errorf("tipo de alvará inválido: %s", s)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}

	return t.Format(dateLayout)
}

func printPermits(w io.Writer, permits []entity.Permit, now time.Time) error {
	tw := newTable(w)

	fmt.Fprintln(tw, "ID\tCLIENTE\tTIPO\tSOLICITAÇÃO\tEMISSÃO\tVENCIMENTO\tSTATUS\tPRAZO")

	for _, p := range permits {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.CompanyName,
			p.Type,
			p.RequestDate.Format(dateLayout),
			formatDate(p.IssueDate),
			formatDate(p.ExpirationDate),
			lifecycle.StatusLabel(p.Status),
			lifecycle.ExpirationText(lifecycle.DaysUntilExpiration(p.ExpirationDate, now)),
		)
	}

	return tw.Flush()
}

func printPermit(w io.Writer, p entity.Permit, stage lifecycle.Stage, now time.Time) error {
	tw := newTable(w)

	situation := "-"
	if p.ProcessingStatus != nil {
		situation = p.ProcessingStatus.Label()
	}

	fmt.Fprintf(tw, "ID\t%s\n", p.ID)
	fmt.Fprintf(tw, "Cliente\t%s\n", p.CompanyName)
	fmt.Fprintf(tw, "Tipo\t%s\n", p.Type)
	fmt.Fprintf(tw, "Etapa\t%s\n", stage)
	fmt.Fprintf(tw, "Solicitação\t%s\n", p.RequestDate.Format(dateLayout))
	fmt.Fprintf(tw, "Emissão\t%s\n", formatDate(p.IssueDate))
	fmt.Fprintf(tw, "Vencimento\t%s\n", formatDate(p.ExpirationDate))
	fmt.Fprintf(tw, "Status\t%s\n", lifecycle.StatusLabel(lifecycle.StatusOf(p, now)))
	fmt.Fprintf(tw, "Situação\t%s\n", situation)

	if text := lifecycle.ExpirationText(lifecycle.DaysUntilExpiration(p.ExpirationDate, now)); text != "" {
		fmt.Fprintf(tw, "Prazo\t%s\n", text)
	}

	err := tw.Flush()
	if err != nil {
		return err
	}

	notes := lifecycle.SplitNotes(p.Notes)
	if len(notes) == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nObservações:")

	for _, n := range notes {
		fmt.Fprintf(w, "  %s\n", n)
	}

	return nil
}

func printCompanies(w io.Writer, companies []entity.Company) error {
	tw := newTable(w)

	fmt.Fprintln(tw, "ID\tCNPJ\tRAZÃO SOCIAL\tNOME FANTASIA\tMUNICÍPIO/UF\tALVARÁS")

	for _, c := range companies {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s/%s\t%d\n",
			c.ID,
			service.FormatCNPJ(c.CNPJ),
			c.LegalName,
			c.TradeName,
			c.City,
			c.State,
			len(c.PermitTypes),
		)
	}

	return tw.Flush()
}

func printStats(w io.Writer, title string, s entity.PermitStats) {
	fmt.Fprintf(w, "%s: %d total | %d pendentes | %d válidos | %d vencendo | %d vencidos\n",
		title, s.Total, s.Pending, s.Valid, s.Expiring, s.Expired)
}
