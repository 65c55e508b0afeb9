// Copyright (c) 2026 Meridian LMS. All rights reserved.

package subscription

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianlms/meridian/internal/platform/dberr"
	"github.com/meridianlms/meridian/internal/platform/postgres"
	"github.com/meridianlms/meridian/pkg/listquery"
)

var subscriptionColumns = []string{
	"id", "tenant_id", "plan", "status", "seats", "current_period_start",
	"current_period_end", "created_at", "updated_at",
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanSubscription(rows pgx.Rows) (*Subscription, error) {
	s := &Subscription{}
	err := rows.Scan(
		&s.ID, &s.TenantID, &s.Plan, &s.Status, &s.Seats, &s.CurrentPeriodStart,
		&s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (repository *PostgresRepository) ListSubscriptions(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Subscription, int, error) {
	predicate := listquery.Predicate(request, ListSpec, scope)

	pageQuery := postgres.Builder.
		Select(subscriptionColumns...).
		From("subscriptions").
		Where(predicate).
		OrderBy(listquery.OrderBy(request, ListSpec)).
		Limit(uint64(request.Limit)).
		Offset(uint64(request.Offset()))

	countQuery := postgres.Builder.
		Select("count(*)").
		From("subscriptions").
		Where(predicate)

	return postgres.RunList(context, repository.db, pageQuery, countQuery, scanSubscription)
}

func (repository *PostgresRepository) GetSubscription(context context.Context, scope listquery.Scope, id string) (*Subscription, error) {
	query, args, err := postgres.Builder.
		Select(subscriptionColumns...).
		From("subscriptions").
		Where(listquery.ScopeEq(ListSpec, scope, "id", id)).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_get_subscription")
	}

	s := &Subscription{}
	err = repository.db.QueryRow(context, query, args...).Scan(
		&s.ID, &s.TenantID, &s.Plan, &s.Status, &s.Seats, &s.CurrentPeriodStart,
		&s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt,
	)

	return s, dberr.Wrap(err, "get_subscription")
}
