// Copyright (c) 2026 Meridian LMS. All rights reserved.

package course

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianlms/meridian/internal/platform/dberr"
	"github.com/meridianlms/meridian/internal/platform/postgres"
	"github.com/meridianlms/meridian/pkg/listquery"
)

var courseColumns = []string{
	"id", "tenant_id", "title", "slug", "description", "status", "level",
	"instructor_id", "price_cents", "published_at", "created_at", "updated_at",
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCourse(rows pgx.Rows) (*Course, error) {
	c := &Course{}
	err := rows.Scan(
		&c.ID, &c.TenantID, &c.Title, &c.Slug, &c.Description, &c.Status, &c.Level,
		&c.InstructorID, &c.PriceCents, &c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (repository *PostgresRepository) ListCourses(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Course, int, error) {
	predicate := listquery.Predicate(request, ListSpec, scope)

	pageQuery := postgres.Builder.
		Select(courseColumns...).
		From("courses").
		Where(predicate).
		OrderBy(listquery.OrderBy(request, ListSpec)).
		Limit(uint64(request.Limit)).
		Offset(uint64(request.Offset()))

	countQuery := postgres.Builder.
		Select("count(*)").
		From("courses").
		Where(predicate)

	return postgres.RunList(context, repository.db, pageQuery, countQuery, scanCourse)
}

func (repository *PostgresRepository) GetCourse(context context.Context, scope listquery.Scope, id string) (*Course, error) {
	query, args, err := postgres.Builder.
		Select(courseColumns...).
		From("courses").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_get_course")
	}

	c := &Course{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&c.ID, &c.TenantID, &c.Title, &c.Slug, &c.Description, &c.Status, &c.Level,
		&c.InstructorID, &c.PriceCents, &c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_course")
}

func (repository *PostgresRepository) CreateCourse(context context.Context, course *Course) error {
	query := `
		INSERT INTO courses (id, tenant_id, title, slug, description, status, level,
			instructor_id, price_cents, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		course.ID, course.TenantID, course.Title, course.Slug, course.Description,
		course.Status, course.Level, course.InstructorID, course.PriceCents, course.PublishedAt,
	).Scan(&course.CreatedAt, &course.UpdatedAt)

	return dberr.Wrap(err, "create_course")
}

func (repository *PostgresRepository) UpdateCourse(context context.Context, scope listquery.Scope, course *Course) error {
	query, args, err := postgres.Builder.
		Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("status", course.Status).
		Set("level", course.Level).
		Set("instructor_id", course.InstructorID).
		Set("price_cents", course.PriceCents).
		Set("published_at", course.PublishedAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(listquery.ScopeEq(ListSpec, scope, "id", course.ID)).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_update_course")
	}

	err = repository.db.QueryRow(context, query, args...).Scan(&course.UpdatedAt)
	return dberr.Wrap(err, "update_course")
}

func (repository *PostgresRepository) DeleteCourse(context context.Context, scope listquery.Scope, id string) error {
	query, args, err := postgres.Builder.
		Delete("courses").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_delete_course")
	}

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_course")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
