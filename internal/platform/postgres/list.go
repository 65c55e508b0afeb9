// Copyright (c) 2026 Meridian LMS. All rights reserved.

package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/meridianlms/meridian/internal/platform/dberr"
)

// Builder is the shared squirrel statement builder configured for
// PostgreSQL's $1-style placeholders. All resource stores derive their
// queries from it.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Querier is the subset of [pgxpool.Pool] needed by the list runner.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RunList executes a page query and its COUNT(*) counterpart concurrently
// and returns the scanned page plus the total row count.
//
// Both builders MUST carry the identical predicate; that is what keeps the
// pagination total consistent with the page content. The two reads are
// independent, so they run in parallel under an errgroup bound to the
// request context — if the caller disconnects or either query fails, the
// other is cancelled and nothing partial is returned.
func RunList[T any](ctx context.Context, db Querier, pageQuery, countQuery sq.SelectBuilder, scan func(rows pgx.Rows) (T, error)) ([]T, int, error) {
	pageSQL, pageArgs, err := pageQuery.ToSql()
	if err != nil {
		return nil, 0, dberr.Wrap(err, "build_page_query")
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, dberr.Wrap(err, "build_count_query")
	}

	var (
		items []T
		total int
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		rows, err := db.Query(groupCtx, pageSQL, pageArgs...)
		if err != nil {
			return dberr.Wrap(err, "list_page_query")
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return dberr.Wrap(err, "list_page_scan")
			}
			items = append(items, item)
		}

		return dberr.Wrap(rows.Err(), "list_page_rows")
	})

	group.Go(func() error {
		if err := db.QueryRow(groupCtx, countSQL, countArgs...).Scan(&total); err != nil {
			return dberr.Wrap(err, "list_count_query")
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	// An empty page marshals as [] rather than null.
	if items == nil {
		items = []T{}
	}

	return items, total, nil
}
