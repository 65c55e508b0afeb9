// Copyright (c) 2026 Meridian LMS. All rights reserved.

package tenant

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianlms/meridian/internal/platform/dberr"
	"github.com/meridianlms/meridian/internal/platform/postgres"
	"github.com/meridianlms/meridian/pkg/listquery"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTenants(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Tenant, int, error) {
	predicate := listquery.Predicate(request, ListSpec, scope)

	pageQuery := postgres.Builder.
		Select("id", "name", "slug", "plan", "status", "contact_email", "created_at", "updated_at").
		From("tenants").
		Where(predicate).
		OrderBy(listquery.OrderBy(request, ListSpec)).
		Limit(uint64(request.Limit)).
		Offset(uint64(request.Offset()))

	countQuery := postgres.Builder.
		Select("count(*)").
		From("tenants").
		Where(predicate)

	return postgres.RunList(context, repository.db, pageQuery, countQuery, func(rows pgx.Rows) (*Tenant, error) {
		t := &Tenant{}
		err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Plan, &t.Status, &t.ContactEmail, &t.CreatedAt, &t.UpdatedAt)
		return t, err
	})
}

func (repository *PostgresRepository) GetTenant(context context.Context, id string) (*Tenant, error) {
	query := `
		SELECT id, name, slug, plan, status, contact_email, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	t := &Tenant{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&t.ID, &t.Name, &t.Slug, &t.Plan, &t.Status, &t.ContactEmail, &t.CreatedAt, &t.UpdatedAt,
	)

	return t, dberr.Wrap(err, "get_tenant")
}

func (repository *PostgresRepository) CreateTenant(context context.Context, tenant *Tenant) error {
	query := `
		INSERT INTO tenants (id, name, slug, plan, status, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		tenant.ID, tenant.Name, tenant.Slug, tenant.Plan, tenant.Status, tenant.ContactEmail,
	).Scan(&tenant.CreatedAt, &tenant.UpdatedAt)

	return dberr.Wrap(err, "create_tenant")
}

func (repository *PostgresRepository) UpdateTenant(context context.Context, tenant *Tenant) error {
	query := `
		UPDATE tenants
		SET name = $2, plan = $3, status = $4, contact_email = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		tenant.ID, tenant.Name, tenant.Plan, tenant.Status, tenant.ContactEmail,
	).Scan(&tenant.UpdatedAt)

	return dberr.Wrap(err, "update_tenant")
}

func (repository *PostgresRepository) DeleteTenant(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tenant")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
