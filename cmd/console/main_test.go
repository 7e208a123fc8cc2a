package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	require.Equal(t, 2, run(nil, &stdout, &stderr))
	require.Contains(t, stderr.String(), "alvara-renovar")

	stderr.Reset()

	require.Equal(t, 2, run([]string{"voar"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "comando desconhecido: voar")
	require.Empty(t, stdout.String())
}

func TestParsePermitType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    entity.PermitType
		wantErr bool
	}{
		{in: "1", want: entity.PermitTypes[0]},
		{in: " alvará sanitário ", want: entity.PermitTypeSanitary},
		{in: "Laudo Acústico", want: entity.PermitTypeAcousticReport},
		{in: "0", wantErr: true},
		{in: "99", wantErr: true},
		{in: "alvará de pesca", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parsePermitType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	types, err := parsePermitTypes("1, Alvará Sanitário")
	require.NoError(t, err)
	require.Equal(t, []entity.PermitType{entity.PermitTypes[0], entity.PermitTypeSanitary}, types)

	types, err = parsePermitTypes("")
	require.NoError(t, err)
	require.Empty(t, types)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	got, err := parseDate("20/03/2025")
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = parseDate("2025-03-20")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = parseDate("31/02/2025")
	require.Error(t, err)

	opt, err := parseOptionalDate("  ")
	require.NoError(t, err)
	require.Nil(t, opt)
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	verr := entity.NewValidationError(entity.ErrIncorrectRequestBody, "type", "Selecione um tipo de alvará para continuar.")
	verr.Add("clienteId", "Selecione um cliente para continuar.")

	printError(&buf, verr)
	require.Equal(t, "Corrija os campos:\n"+
		"  clienteId: Selecione um cliente para continuar.\n"+
		"  type: Selecione um tipo de alvará para continuar.\n", buf.String())

	buf.Reset()

	printError(&buf, &entity.RateLimitError{RetryAfter: 42, Err: entity.ErrRegistryRateLimited})
	require.Equal(t, "Limite de requisições excedido (3 por minuto). Tente novamente em 42 segundos.\n", buf.String())

	buf.Reset()

	printError(&buf, errors.New("Erro ao excluir alvará"))
	require.Equal(t, "Erro ao excluir alvará\n", buf.String())
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "512 B", formatSize(512))
	require.Equal(t, "1.5 KB", formatSize(1536))
	require.Equal(t, "2.0 MB", formatSize(2<<20))
}
