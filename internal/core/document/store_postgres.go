// Copyright (c) 2026 Meridian LMS. All rights reserved.

package document

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianlms/meridian/internal/platform/dberr"
	"github.com/meridianlms/meridian/internal/platform/postgres"
	"github.com/meridianlms/meridian/pkg/listquery"
)

var documentColumns = []string{
	"id", "tenant_id", "course_id", "title", "kind", "status", "size_bytes",
	"created_at", "updated_at",
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanDocument(rows pgx.Rows) (*Document, error) {
	d := &Document{}
	err := rows.Scan(
		&d.ID, &d.TenantID, &d.CourseID, &d.Title, &d.Kind, &d.Status, &d.SizeBytes,
		&d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (repository *PostgresRepository) ListDocuments(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Document, int, error) {
	predicate := listquery.Predicate(request, ListSpec, scope)

	pageQuery := postgres.Builder.
		Select(documentColumns...).
		From("documents").
		Where(predicate).
		OrderBy(listquery.OrderBy(request, ListSpec)).
		Limit(uint64(request.Limit)).
		Offset(uint64(request.Offset()))

	countQuery := postgres.Builder.
		Select("count(*)").
		From("documents").
		Where(predicate)

	return postgres.RunList(context, repository.db, pageQuery, countQuery, scanDocument)
}

func (repository *PostgresRepository) GetDocument(context context.Context, scope listquery.Scope, id string) (*Document, error) {
	query, args, err := postgres.Builder.
		Select(documentColumns...).
		From("documents").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_get_document")
	}

	d := &Document{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&d.ID, &d.TenantID, &d.CourseID, &d.Title, &d.Kind, &d.Status, &d.SizeBytes,
		&d.CreatedAt, &d.UpdatedAt,
	)

	return d, dberr.Wrap(err, "get_document")
}

func (repository *PostgresRepository) CreateDocument(context context.Context, document *Document) error {
	query := `
		INSERT INTO documents (id, tenant_id, course_id, title, kind, status, size_bytes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		document.ID, document.TenantID, document.CourseID, document.Title,
		document.Kind, document.Status, document.SizeBytes,
	).Scan(&document.CreatedAt, &document.UpdatedAt)

	return dberr.Wrap(err, "create_document")
}

func (repository *PostgresRepository) UpdateDocument(context context.Context, scope listquery.Scope, document *Document) error {
	query, args, err := postgres.Builder.
		Update("documents").
		Set("title", document.Title).
		Set("kind", document.Kind).
		Set("status", document.Status).
		Set("size_bytes", document.SizeBytes).
		Set("updated_at", sq.Expr("NOW()")).
		Where(listquery.ScopeEq(ListSpec, scope, "id", document.ID)).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_update_document")
	}

	err = repository.db.QueryRow(context, query, args...).Scan(&document.UpdatedAt)
	return dberr.Wrap(err, "update_document")
}

func (repository *PostgresRepository) DeleteDocument(context context.Context, scope listquery.Scope, id string) error {
	query, args, err := postgres.Builder.
		Delete("documents").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_delete_document")
	}

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_document")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
