package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func permitsSelect() sq.SelectBuilder {
	return psql().Select(
		"a.id",
		"a.cliente_id",
		"a.type",
		"a.request_date",
		"a.issue_date",
		"a.expiration_date",
		"a.processing_status",
		"a.notes",
		"a.criado_em",
		"a.atualizado_em",
		"c.razao_social",
		"c.cnpj",
	).From("alvaras a").Join("clientes c ON c.id = a.cliente_id")
}

func scanPermit(row pgx.Row) (entity.Permit, error) {
	var p entity.Permit

	err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.Type,
		&p.RequestDate,
		&p.IssueDate,
		&p.ExpirationDate,
		&p.ProcessingStatus,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CompanyName,
		&p.CompanyCNPJ,
	)

	return p, err
}

func (r *Repository) CreatePermit(ctx context.Context, p entity.Permit) error {
	sqlQuery :=
		`INSERT INTO alvaras (id, cliente_id, type, request_date, issue_date, expiration_date,
			processing_status, notes, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sqlQuery,
		p.ID,
		p.CompanyID,
		p.Type,
		p.RequestDate,
		p.IssueDate,
		p.ExpirationDate,
		p.ProcessingStatus,
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) UpdatePermit(ctx context.Context, p entity.Permit) error {
	sqlQuery :=
		`UPDATE alvaras
		SET cliente_id = $2, type = $3, request_date = $4, issue_date = $5, expiration_date = $6,
			processing_status = $7, notes = $8, atualizado_em = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sqlQuery,
		p.ID,
		p.CompanyID,
		p.Type,
		p.RequestDate,
		p.IssueDate,
		p.ExpirationDate,
		p.ProcessingStatus,
		p.Notes,
		p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePermit(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM alvaras WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) PermitByID(ctx context.Context, id uuid.UUID) (entity.Permit, error) {
	sqlQuery, args, err := permitsSelect().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return entity.Permit{}, err
	}

	p, err := scanPermit(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		return entity.Permit{}, mapErr(err)
	}

	return p, nil
}

func (r *Repository) Permits(ctx context.Context, filter entity.PermitsFilter) ([]entity.Permit, error) {
	stmt := applyPermitsFilter(permitsSelect(), filter).OrderBy("a.criado_em DESC", "a.id")

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permits := make([]entity.Permit, 0)

	for rows.Next() {
		p, err := scanPermit(rows)
		if err != nil {
			return nil, err
		}

		permits = append(permits, p)
	}

	return permits, rows.Err()
}

func applyPermitsFilter(stmt sq.SelectBuilder, filter entity.PermitsFilter) sq.SelectBuilder {
	if filter.CompanyID != nil {
		stmt = stmt.Where(sq.Eq{"a.cliente_id": *filter.CompanyID})
	}

	if len(filter.Types) > 0 {
		stmt = stmt.Where(sq.Eq{"a.type": filter.Types})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"c.razao_social": like},
			sq.ILike{"c.nome_fantasia": like},
			sq.Like{"c.cnpj": like},
			sq.ILike{"a.type": like},
		})
	}

	if filter.ExpiresBefore != nil {
		stmt = stmt.Where(sq.And{
			sq.NotEq{"a.issue_date": nil},
			sq.NotEq{"a.expiration_date": nil},
			sq.Lt{"a.expiration_date": *filter.ExpiresBefore},
		})
	}

	return stmt
}
