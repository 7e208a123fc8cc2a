package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

// CreateActivity inserts one activity. A code already present for the company
// yields entity.ErrAlreadyExists.
func (r *Repository) CreateActivity(ctx context.Context, a entity.Activity) error {
	sqlQuery, args, err := psql().Insert("atividades_secundarias").
		Columns("id", "cliente_id", "codigo", "descricao", "criado_em", "atualizado_em").
		Values(a.ID, a.CompanyID, a.Code, a.Description, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)

	return mapErr(err)
}

// CreateActivities inserts activities in bulk, skipping codes the company
// already has.
func (r *Repository) CreateActivities(ctx context.Context, activities ...entity.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	stmt := psql().Insert("atividades_secundarias").
		Columns("id", "cliente_id", "codigo", "descricao", "criado_em", "atualizado_em").
		Suffix("ON CONFLICT (cliente_id, codigo) DO NOTHING")

	for _, a := range activities {
		stmt = stmt.Values(a.ID, a.CompanyID, a.Code, a.Description, a.CreatedAt, a.UpdatedAt)
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)

	return mapErr(err)
}

func (r *Repository) ActivitiesByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Activity, error) {
	sqlQuery :=
		`SELECT id, cliente_id, codigo, descricao, criado_em, atualizado_em
		FROM atividades_secundarias
		WHERE cliente_id = $1
		ORDER BY codigo`

	rows, err := r.db.Query(ctx, sqlQuery, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]entity.Activity, 0)

	for rows.Next() {
		var a entity.Activity

		err = rows.Scan(&a.ID, &a.CompanyID, &a.Code, &a.Description, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func (r *Repository) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM atividades_secundarias WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
