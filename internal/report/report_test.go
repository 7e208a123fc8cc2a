package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/report"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestWorkbook(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	launched := entity.ProcessingStatusLaunched

	company := entity.Company{
		ID:                      uuid.Must(uuid.NewV4()),
		CNPJ:                    "11222333000181",
		LegalName:               "Padaria Pão Quente LTDA",
		TradeName:               "Pão Quente",
		State:                   "SP",
		City:                    "Campinas",
		MainActivityCode:        "10.91-1-02",
		MainActivityDescription: "Fabricação de produtos de padaria",
		PermitTypes:             []entity.PermitType{entity.PermitTypeOperating, entity.PermitTypeSanitary},
	}

	permits := []entity.Permit{
		{
			CompanyID:        company.ID,
			Type:             entity.PermitTypeOperating,
			RequestDate:      *date(2024, 1, 10),
			IssueDate:        date(2024, 2, 1),
			ExpirationDate:   date(2025, 3, 20),
			ProcessingStatus: &launched,
		},
		{
			CompanyID:   company.ID,
			Type:        entity.PermitTypeSanitary,
			RequestDate: *date(2025, 3, 1),
			Status:      entity.PermitStatusExpired,
		},
	}

	wb, err := report.New()
	require.NoError(t, err)
	require.NoError(t, wb.AddPermits(permits, []entity.Company{company}, now))
	require.NoError(t, wb.AddCompanies([]entity.Company{company}))

	var buf bytes.Buffer

	_, err = wb.WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	t.Cleanup(func() { _ = f.Close() })

	require.Equal(t, []string{report.SheetPermits, report.SheetCompanies}, f.GetSheetList())

	rows, err := f.GetRows(report.SheetPermits)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Vencimento", rows[0][5])
	require.Equal(t, []string{
		"Pão Quente", "11.222.333/0001-81", "Alvará de Funcionamento",
		"10/01/2024", "01/02/2024", "20/03/2025", "Vencendo", "Lançado", "10 dias",
	}, rows[1])
	require.Equal(t, "Pendente", rows[2][6])
	require.Equal(t, entity.PermitStatusExpired, permits[1].Status)

	rows, err = f.GetRows(report.SheetCompanies)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "10.91-1-02 - Fabricação de produtos de padaria", rows[1][5])
	require.Equal(t, "Alvará de Funcionamento; Alvará Sanitário", rows[1][6])
}
