package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

var companyColumns = []string{
	"id",
	"cnpj",
	"razao_social",
	"nome_fantasia",
	"uf",
	"municipio",
	"atividade_principal_codigo",
	"atividade_principal_descricao",
	"alvaras",
	"criado_em",
	"atualizado_em",
}

func scanCompany(row pgx.Row) (entity.Company, error) {
	var (
		c     entity.Company
		types []string
	)

	err := row.Scan(
		&c.ID,
		&c.CNPJ,
		&c.LegalName,
		&c.TradeName,
		&c.State,
		&c.City,
		&c.MainActivityCode,
		&c.MainActivityDescription,
		&types,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return entity.Company{}, err
	}

	c.PermitTypes = make([]entity.PermitType, 0, len(types))
	for _, t := range types {
		c.PermitTypes = append(c.PermitTypes, entity.PermitType(t))
	}

	return c, nil
}

func permitTypesToText(types []entity.PermitType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}

	return out
}

func (r *Repository) CreateCompany(ctx context.Context, c entity.Company) error {
	sqlQuery, args, err := psql().Insert("clientes").Columns(companyColumns...).Values(
		c.ID,
		c.CNPJ,
		c.LegalName,
		c.TradeName,
		c.State,
		c.City,
		c.MainActivityCode,
		c.MainActivityDescription,
		permitTypesToText(c.PermitTypes),
		c.CreatedAt,
		c.UpdatedAt,
	).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)

	return mapErr(err)
}

func (r *Repository) UpdateCompany(ctx context.Context, c entity.Company) error {
	sqlQuery :=
		`UPDATE clientes
		SET cnpj = $2, razao_social = $3, nome_fantasia = $4, uf = $5, municipio = $6,
			atividade_principal_codigo = $7, atividade_principal_descricao = $8, alvaras = $9, atualizado_em = $10
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sqlQuery,
		c.ID,
		c.CNPJ,
		c.LegalName,
		c.TradeName,
		c.State,
		c.City,
		c.MainActivityCode,
		c.MainActivityDescription,
		permitTypesToText(c.PermitTypes),
		c.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CompanyByID(ctx context.Context, id uuid.UUID) (entity.Company, error) {
	return r.companyBy(ctx, "id", id)
}

func (r *Repository) CompanyByCNPJ(ctx context.Context, cnpj string) (entity.Company, error) {
	return r.companyBy(ctx, "cnpj", cnpj)
}

func (r *Repository) companyBy(ctx context.Context, column string, value any) (entity.Company, error) {
	sqlQuery, args, err := psql().Select(companyColumns...).From("clientes").Where(sq.Eq{column: value}).ToSql()
	if err != nil {
		return entity.Company{}, err
	}

	c, err := scanCompany(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		return entity.Company{}, mapErr(err)
	}

	return c, nil
}

func (r *Repository) Companies(ctx context.Context) ([]entity.Company, error) {
	sqlQuery, args, err := psql().Select(companyColumns...).From("clientes").OrderBy("razao_social").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]entity.Company, 0)

	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}

		companies = append(companies, c)
	}

	return companies, rows.Err()
}
