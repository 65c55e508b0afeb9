// Copyright (c) 2026 Meridian LMS. All rights reserved.

package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianlms/meridian/internal/platform/dberr"
)

const userSelect = `
	SELECT id, tenant_id, username, email, password_hash, display_name, role,
	       status, last_login_at, created_at, updated_at
	FROM users
`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	u := &User{}
	err := repository.db.QueryRow(context, userSelect+`WHERE id = $1`, id).Scan(
		&u.ID, &u.TenantID, &u.Username, &u.Email, &u.PasswordHash, &u.DisplayName,
		&u.Role, &u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)

	return u, dberr.Wrap(err, "find_user_by_id")
}

func (repository *PostgresRepository) FindByLogin(context context.Context, login string) (*User, error) {
	u := &User{}
	err := repository.db.QueryRow(context, userSelect+`WHERE email = $1 OR username = $1`, login).Scan(
		&u.ID, &u.TenantID, &u.Username, &u.Email, &u.PasswordHash, &u.DisplayName,
		&u.Role, &u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)

	return u, dberr.Wrap(err, "find_user_by_login")
}

func (repository *PostgresRepository) TouchLastLogin(context context.Context, id string) error {
	_, err := repository.db.Exec(context, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	return dberr.Wrap(err, "touch_last_login")
}
