package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samandr77/microservices/alvaras/internal/gateway"
	"github.com/samandr77/microservices/alvaras/internal/report"
)

func runDocuments(ctx context.Context, a *app, args []string) error {
	fs := newFlags("documentos", a.out)
	rawCompany := fs.String("cliente", "", "id do cliente")
	remove := fs.String("excluir", "", "id do documento a excluir")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *remove != "" {
		id, err := parseID("excluir", *remove)
		if err != nil {
			return err
		}

		err = a.gw.Documents.Delete(ctx, id)
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, "Documento excluído.")

		return nil
	}

	companyID, err := parseID("cliente", *rawCompany)
	if err != nil {
		return err
	}

	docs, err := a.gw.Documents.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNOME\tTIPO\tARQUIVO\tTAMANHO\tENVIADO EM")

	for _, d := range docs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Name, d.Kind, d.FileName, formatSize(d.FileSize), d.UploadedAt.Format("02/01/2006 15:04"))
	}

	return tw.Flush()
}

func runDocumentUpload(ctx context.Context, a *app, args []string) error {
	fs := newFlags("documento-enviar", a.out)
	rawCompany := fs.String("cliente", "", "id do cliente")
	path := fs.String("arquivo", "", "caminho do arquivo")
	name := fs.String("nome", "", "nome do documento (padrão: nome do arquivo)")
	kind := fs.String("tipo", "", "tipo do documento")

	if err := fs.Parse(args); err != nil {
		return err
	}

	companyID, err := parseID("cliente", *rawCompany)
	if err != nil {
		return err
	}

	f, err := os.Open(*path)
	if err != nil {
		return fmt.Errorf("abrir arquivo: %w", err)
	}
	defer f.Close()

	meta := gateway.DocumentMeta{
		Name:     *name,
		Kind:     *kind,
		FileName: filepath.Base(*path),
	}

	if meta.Name == "" {
		meta.Name = meta.FileName
	}

	doc, err := a.gw.Documents.Upload(ctx, companyID, meta, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Documento %s enviado (%s, %s).\n", doc.Name, doc.ID, formatSize(doc.FileSize))

	return nil
}

func runDocumentDownload(ctx context.Context, a *app, args []string) error {
	fs := newFlags("documento-baixar", a.out)
	rawID := fs.String("id", "", "id do documento")
	dir := fs.String("destino", ".", "diretório de destino")

	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID("id", *rawID)
	if err != nil {
		return err
	}

	doc, err := a.gw.Documents.Download(ctx, id)
	if err != nil {
		return err
	}
	defer doc.Content.Close()

	name := filepath.Base(doc.FileName)
	if name == "." || name == string(filepath.Separator) {
		name = id.String()
	}

	target := filepath.Join(*dir, name)

	n, err := writeFile(target, doc.Content)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Salvo em %s (%s).\n", target, formatSize(n))

	return nil
}

func runExport(ctx context.Context, a *app, args []string) error {
	fs := newFlags("exportar", a.out)
	target := fs.String("saida", "alvaras.xlsx", "arquivo XLSX de saída")

	if err := fs.Parse(args); err != nil {
		return err
	}

	companies, err := a.companies.Load(ctx)
	if err != nil {
		return err
	}

	permits, err := a.permits.Load(ctx)
	if err != nil {
		return err
	}

	wb, err := report.New()
	if err != nil {
		return err
	}

	err = wb.AddPermits(permits, companies, a.now())
	if err == nil {
		err = wb.AddCompanies(companies)
	}

	if err != nil {
		_ = wb.Close()
		return err
	}

	out, err := os.Create(*target)
	if err != nil {
		_ = wb.Close()
		return fmt.Errorf("criar arquivo: %w", err)
	}
	defer out.Close()

	_, err = wb.WriteTo(out)
	if err != nil {
		return fmt.Errorf("gravar planilha: %w", err)
	}

	fmt.Fprintf(a.out, "%d alvarás e %d clientes exportados para %s.\n", len(permits), len(companies), *target)

	return nil
}

func writeFile(path string, r io.Reader) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return 0, fmt.Errorf("criar arquivo: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("gravar arquivo: %w", err)
	}

	return n, f.Close()
}

func formatSize(n int64) string {
	const unit = 1024

	switch {
	case n < unit:
		return fmt.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(unit*unit))
	}
}
