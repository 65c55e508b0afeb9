// Copyright (c) 2026 Meridian LMS. All rights reserved.

package quiz

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianlms/meridian/internal/platform/dberr"
	"github.com/meridianlms/meridian/internal/platform/postgres"
	"github.com/meridianlms/meridian/pkg/listquery"
)

var quizColumns = []string{
	"id", "tenant_id", "course_id", "title", "status", "question_count",
	"time_limit_seconds", "passing_score", "created_at", "updated_at",
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanQuiz(rows pgx.Rows) (*Quiz, error) {
	q := &Quiz{}
	err := rows.Scan(
		&q.ID, &q.TenantID, &q.CourseID, &q.Title, &q.Status, &q.QuestionCount,
		&q.TimeLimitSeconds, &q.PassingScore, &q.CreatedAt, &q.UpdatedAt,
	)
	return q, err
}

func (repository *PostgresRepository) ListQuizzes(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Quiz, int, error) {
	predicate := listquery.Predicate(request, ListSpec, scope)

	pageQuery := postgres.Builder.
		Select(quizColumns...).
		From("quizzes").
		Where(predicate).
		OrderBy(listquery.OrderBy(request, ListSpec)).
		Limit(uint64(request.Limit)).
		Offset(uint64(request.Offset()))

	countQuery := postgres.Builder.
		Select("count(*)").
		From("quizzes").
		Where(predicate)

	return postgres.RunList(context, repository.db, pageQuery, countQuery, scanQuiz)
}

func (repository *PostgresRepository) GetQuiz(context context.Context, scope listquery.Scope, id string) (*Quiz, error) {
	query, args, err := postgres.Builder.
		Select(quizColumns...).
		From("quizzes").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_get_quiz")
	}

	q := &Quiz{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&q.ID, &q.TenantID, &q.CourseID, &q.Title, &q.Status, &q.QuestionCount,
		&q.TimeLimitSeconds, &q.PassingScore, &q.CreatedAt, &q.UpdatedAt,
	)

	return q, dberr.Wrap(err, "get_quiz")
}

func (repository *PostgresRepository) CreateQuiz(context context.Context, quiz *Quiz) error {
	query := `
		INSERT INTO quizzes (id, tenant_id, course_id, title, status, question_count,
			time_limit_seconds, passing_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		quiz.ID, quiz.TenantID, quiz.CourseID, quiz.Title, quiz.Status,
		quiz.QuestionCount, quiz.TimeLimitSeconds, quiz.PassingScore,
	).Scan(&quiz.CreatedAt, &quiz.UpdatedAt)

	return dberr.Wrap(err, "create_quiz")
}

func (repository *PostgresRepository) UpdateQuiz(context context.Context, scope listquery.Scope, quiz *Quiz) error {
	query, args, err := postgres.Builder.
		Update("quizzes").
		Set("title", quiz.Title).
		Set("status", quiz.Status).
		Set("question_count", quiz.QuestionCount).
		Set("time_limit_seconds", quiz.TimeLimitSeconds).
		Set("passing_score", quiz.PassingScore).
		Set("updated_at", sq.Expr("NOW()")).
		Where(listquery.ScopeEq(ListSpec, scope, "id", quiz.ID)).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_update_quiz")
	}

	err = repository.db.QueryRow(context, query, args...).Scan(&quiz.UpdatedAt)
	return dberr.Wrap(err, "update_quiz")
}

func (repository *PostgresRepository) DeleteQuiz(context context.Context, scope listquery.Scope, id string) error {
	query, args, err := postgres.Builder.
		Delete("quizzes").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_delete_quiz")
	}

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_quiz")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
