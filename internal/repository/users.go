package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User

	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.PasswordHash, &u.CreatedAt)

	return u, err
}

func (r *Repository) CreateUser(ctx context.Context, u entity.User) error {
	sqlQuery :=
		`INSERT INTO users (id, email, full_name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, sqlQuery, u.ID, u.Email, u.FullName, u.Role, u.PasswordHash, u.CreatedAt)

	return mapErr(err)
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	sqlQuery := `SELECT id, email, full_name, role, password_hash, created_at FROM users WHERE email = $1`

	u, err := scanUser(r.db.QueryRow(ctx, sqlQuery, email))
	if err != nil {
		return entity.User{}, mapErr(err)
	}

	return u, nil
}

func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) Users(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, full_name, role, password_hash, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SaveAttempt(ctx context.Context, a entity.Attempt) error {
	sqlQuery :=
		`INSERT INTO attempts (id, type, email, ip_address, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, sqlQuery, a.ID, a.Type, a.Email, a.IPAddress, a.Success, a.CreatedAt)

	return err
}

// FailedAttempts returns failed attempts for the email since the given time, newest first.
func (r *Repository) FailedAttempts(
	ctx context.Context,
	email string,
	attemptType entity.AttemptType,
	since time.Time,
) ([]entity.Attempt, error) {
	sqlQuery :=
		`SELECT id, type, email, ip_address, success, created_at
		FROM attempts
		WHERE email = $1 AND type = $2 AND created_at > $3 AND NOT success
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sqlQuery, email, attemptType, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []entity.Attempt

	for rows.Next() {
		var a entity.Attempt

		err = rows.Scan(&a.ID, &a.Type, &a.Email, &a.IPAddress, &a.Success, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

func (r *Repository) ClearFailedAttempts(ctx context.Context, email string, attemptType entity.AttemptType) error {
	_, err := r.db.Exec(ctx, `DELETE FROM attempts WHERE email = $1 AND type = $2 AND NOT success`, email, attemptType)
	return err
}

// DeleteAttemptsBefore removes attempts older than before and reports how many were removed.
func (r *Repository) DeleteAttemptsBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM attempts WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
