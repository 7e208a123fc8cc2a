// Package report exports permits and companies as XLSX workbooks.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
	"github.com/samandr77/microservices/alvaras/internal/service"
)

const (
	SheetPermits   = "Alvarás"
	SheetCompanies = "Clientes"

	dateLayout   = "02/01/2006"
	defaultSheet = "Sheet1"
)

var (
	permitHeaders = []string{
		"Cliente", "CNPJ", "Tipo", "Solicitação", "Emissão", "Vencimento",
		"Status", "Situação", "Prazo", "Observações",
	}
	companyHeaders = []string{
		"CNPJ", "Razão Social", "Nome Fantasia", "UF", "Município",
		"Atividade Principal", "Alvarás",
	}
)

// Workbook collects sheets before they are written out.
type Workbook struct {
	f      *excelize.File
	header int
	sheets int
}

func New() (*Workbook, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1A659E"}, Pattern: 1},
		Font:      &excelize.Font{Color: "FFFFFF", Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	return &Workbook{f: f, header: header}, nil
}

// AddPermits writes one row per permit with its status computed at now.
// companies fills the client columns when the permit carries no company data.
func (w *Workbook) AddPermits(permits []entity.Permit, companies []entity.Company, now time.Time) error {
	byID := make(map[string]entity.Company, len(companies))
	for _, c := range companies {
		byID[c.ID.String()] = c
	}

	rows := make([][]any, 0, len(permits))

	for _, p := range lifecycle.RefreshAll(slices.Clone(permits), now) {
		name, cnpj := p.CompanyName, p.CompanyCNPJ

		if c, ok := byID[p.CompanyID.String()]; ok {
			if name == "" {
				name = c.DisplayName()
			}

			if cnpj == "" {
				cnpj = c.CNPJ
			}
		}

		situation := ""
		if p.ProcessingStatus != nil {
			situation = p.ProcessingStatus.Label()
		}

		rows = append(rows, []any{
			name,
			service.FormatCNPJ(cnpj),
			string(p.Type),
			p.RequestDate.Format(dateLayout),
			formatDate(p.IssueDate),
			formatDate(p.ExpirationDate),
			lifecycle.StatusLabel(p.Status),
			situation,
			lifecycle.ExpirationText(lifecycle.DaysUntilExpiration(p.ExpirationDate, now)),
			p.Notes,
		})
	}

	return w.addSheet(SheetPermits, permitHeaders, rows, []float64{32, 20, 30, 14, 14, 14, 14, 22, 24, 60})
}

func (w *Workbook) AddCompanies(companies []entity.Company) error {
	rows := make([][]any, 0, len(companies))

	for _, c := range companies {
		types := make([]string, 0, len(c.PermitTypes))
		for _, t := range c.PermitTypes {
			types = append(types, string(t))
		}

		main := c.MainActivityCode
		if c.MainActivityDescription != "" {
			main += " - " + c.MainActivityDescription
		}

		rows = append(rows, []any{
			service.FormatCNPJ(c.CNPJ),
			c.LegalName,
			c.TradeName,
			c.State,
			c.City,
			main,
			strings.Join(types, "; "),
		})
	}

	return w.addSheet(SheetCompanies, companyHeaders, rows, []float64{20, 40, 30, 6, 24, 50, 60})
}

func (w *Workbook) addSheet(name string, headers []string, rows [][]any, widths []float64) error {
	if w.sheets == 0 {
		if err := w.f.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}

	w.sheets++

	err := w.f.SetSheetRow(name, "A1", &headers)
	if err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}

	err = w.f.SetCellStyle(name, "A1", last, w.header)
	if err != nil {
		return fmt.Errorf("style headers: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		err = w.f.SetSheetRow(name, cell, &row)
		if err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		err = w.f.SetColWidth(name, col, col, width)
		if err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if len(rows) > 0 {
		bottom, err := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
		if err != nil {
			return err
		}

		err = w.f.AutoFilter(name, "A1:"+bottom, nil)
		if err != nil {
			return fmt.Errorf("auto filter: %w", err)
		}
	}

	return nil
}

// WriteTo writes the workbook and releases it.
func (w *Workbook) WriteTo(dst io.Writer) (int64, error) {
	defer w.f.Close()

	if w.sheets > 0 {
		w.f.SetActiveSheet(0)
	}

	return w.f.WriteTo(dst)
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateLayout)
}
