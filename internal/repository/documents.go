package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

const documentColumns = `id, cliente_id, nome_documento, nome_arquivo, caminho_arquivo, tamanho_arquivo,
	tipo_mime, tipo_documento, tipo_armazenamento, data_upload`

func scanDocument(row pgx.Row) (entity.Document, error) {
	var d entity.Document

	err := row.Scan(
		&d.ID,
		&d.CompanyID,
		&d.Name,
		&d.FileName,
		&d.FilePath,
		&d.FileSize,
		&d.MimeType,
		&d.Kind,
		&d.StorageType,
		&d.UploadedAt,
	)

	return d, err
}

func (r *Repository) CreateDocument(ctx context.Context, d entity.Document) error {
	sqlQuery := `INSERT INTO documentos_cliente (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sqlQuery,
		d.ID,
		d.CompanyID,
		d.Name,
		d.FileName,
		d.FilePath,
		d.FileSize,
		d.MimeType,
		d.Kind,
		d.StorageType,
		d.UploadedAt,
	)

	return mapErr(err)
}

func (r *Repository) DocumentByID(ctx context.Context, id uuid.UUID) (entity.Document, error) {
	sqlQuery := `SELECT ` + documentColumns + ` FROM documentos_cliente WHERE id = $1`

	d, err := scanDocument(r.db.QueryRow(ctx, sqlQuery, id))
	if err != nil {
		return entity.Document{}, mapErr(err)
	}

	return d, nil
}

func (r *Repository) DocumentsByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Document, error) {
	sqlQuery := `SELECT ` + documentColumns + ` FROM documentos_cliente WHERE cliente_id = $1 ORDER BY data_upload DESC`

	rows, err := r.db.Query(ctx, sqlQuery, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]entity.Document, 0)

	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}

		documents = append(documents, d)
	}

	return documents, rows.Err()
}

func (r *Repository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documentos_cliente WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
