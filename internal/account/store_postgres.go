// Copyright (c) 2026 Meridian LMS. All rights reserved.

package account

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianlms/meridian/internal/platform/dberr"
	"github.com/meridianlms/meridian/internal/platform/postgres"
	"github.com/meridianlms/meridian/pkg/listquery"
)

var accountColumns = []string{
	"id", "tenant_id", "username", "email", "display_name", "role", "status",
	"last_login_at", "created_at", "updated_at",
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanAccount(rows pgx.Rows) (*Account, error) {
	a := &Account{}
	err := rows.Scan(
		&a.ID, &a.TenantID, &a.Username, &a.Email, &a.DisplayName, &a.Role, &a.Status,
		&a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListAccounts(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Account, int, error) {
	predicate := listquery.Predicate(request, ListSpec, scope)

	pageQuery := postgres.Builder.
		Select(accountColumns...).
		From("users").
		Where(predicate).
		OrderBy(listquery.OrderBy(request, ListSpec)).
		Limit(uint64(request.Limit)).
		Offset(uint64(request.Offset()))

	countQuery := postgres.Builder.
		Select("count(*)").
		From("users").
		Where(predicate)

	return postgres.RunList(context, repository.db, pageQuery, countQuery, scanAccount)
}

func (repository *PostgresRepository) GetAccount(context context.Context, scope listquery.Scope, id string) (*Account, error) {
	query, args, err := postgres.Builder.
		Select(accountColumns...).
		From("users").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_get_account")
	}

	a := &Account{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&a.ID, &a.TenantID, &a.Username, &a.Email, &a.DisplayName, &a.Role, &a.Status,
		&a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, dberr.Wrap(err, "get_account")
}

func (repository *PostgresRepository) CreateAccount(context context.Context, account *Account, passwordHash string) error {
	query := `
		INSERT INTO users (id, tenant_id, username, email, password_hash, display_name,
			role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		account.ID, account.TenantID, account.Username, account.Email, passwordHash,
		account.DisplayName, account.Role, account.Status,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	return dberr.Wrap(err, "create_account")
}

func (repository *PostgresRepository) UpdateRole(context context.Context, scope listquery.Scope, id, role string) (*Account, error) {
	query, args, err := postgres.Builder.
		Update("users").
		Set("role", role).
		Set("updated_at", sq.Expr("NOW()")).
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		Suffix("RETURNING id, tenant_id, username, email, display_name, role, status, last_login_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_update_role")
	}

	a := &Account{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&a.ID, &a.TenantID, &a.Username, &a.Email, &a.DisplayName, &a.Role, &a.Status,
		&a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, dberr.Wrap(err, "update_role")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, scope listquery.Scope, id, status string) error {
	query, args, err := postgres.Builder.
		Update("users").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_update_status")
	}

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
