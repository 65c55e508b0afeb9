// Copyright (c) 2026 Meridian LMS. All rights reserved.

package postgres_test

import (
	"context"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlms/meridian/internal/platform/postgres"
)

// fakeRows replays a fixed column of strings through the pgx.Rows interface.
type fakeRows struct {
	values  []string
	index   int
	scanErr error
	rowsErr error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.rowsErr }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.index < len(r.values) {
		r.index++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*string) = r.values[r.index-1]
	return nil
}

// fakeRow answers the COUNT(*) query.
type fakeRow struct {
	total int
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.total
	return nil
}

// fakeQuerier records what each query received. The page and count fields
// are written by separate goroutines and only read after RunList returns.
type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	row      fakeRow

	pageSQL   string
	pageArgs  []any
	countSQL  string
	countArgs []any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.pageSQL = sql
	q.pageArgs = args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.countSQL = sql
	q.countArgs = args
	return q.row
}

func scanTitle(rows pgx.Rows) (string, error) {
	var title string
	err := rows.Scan(&title)
	return title, err
}

func listQueries(where sq.And, limit uint64) (sq.SelectBuilder, sq.SelectBuilder) {
	page := postgres.Builder.Select("title").From("courses").Where(where).OrderBy("title ASC, id ASC").Limit(limit)
	count := postgres.Builder.Select("COUNT(*)").From("courses").Where(where)
	return page, count
}

/*
TestRunList verifies the happy path: the scanned page comes back with the
total, and both queries carry the identical predicate arguments so the
count can never drift from the page.
*/
func TestRunList(t *testing.T) {
	where := sq.And{sq.Eq{"tenant_id": "tenant-1"}, sq.Eq{"status": "draft"}}
	page, count := listQueries(where, 10)

	querier := &fakeQuerier{
		rows: &fakeRows{values: []string{"Go Basics", "SQL Basics"}},
		row:  fakeRow{total: 25},
	}

	items, total, err := postgres.RunList(context.Background(), querier, page, count, scanTitle)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go Basics", "SQL Basics"}, items)
	assert.Equal(t, 25, total)

	// Identical predicate args, dollar placeholders in both statements.
	assert.Equal(t, querier.pageArgs, querier.countArgs)
	assert.Contains(t, querier.pageSQL, "$1")
	assert.Contains(t, querier.countSQL, "$1")
	assert.Contains(t, querier.countSQL, "COUNT(*)")
	assert.Contains(t, querier.pageSQL, "LIMIT 10")
}

/*
TestRunList_EmptyPage verifies an empty result is a non-nil empty slice, so
the list envelope marshals as [] instead of null.
*/
func TestRunList_EmptyPage(t *testing.T) {
	where := sq.And{sq.Eq{"tenant_id": "tenant-1"}}
	page, count := listQueries(where, 10)

	querier := &fakeQuerier{rows: &fakeRows{}, row: fakeRow{total: 0}}

	items, total, err := postgres.RunList(context.Background(), querier, page, count, scanTitle)
	require.NoError(t, err)

	require.NotNil(t, items)
	assert.Len(t, items, 0)
	assert.Equal(t, 0, total)
}

/*
TestRunList_Failures verifies that a failure in either leg, or in scanning,
fails the whole call with nothing partial returned.
*/
func TestRunList_Failures(t *testing.T) {
	where := sq.And{sq.Eq{"tenant_id": "tenant-1"}}

	tests := []struct {
		name    string
		querier *fakeQuerier
	}{
		{
			name:    "page_query_fails",
			querier: &fakeQuerier{queryErr: errors.New("connection reset"), row: fakeRow{total: 3}},
		},
		{
			name:    "count_query_fails",
			querier: &fakeQuerier{rows: &fakeRows{values: []string{"Go Basics"}}, row: fakeRow{err: errors.New("connection reset")}},
		},
		{
			name:    "scan_fails",
			querier: &fakeQuerier{rows: &fakeRows{values: []string{"Go Basics"}, scanErr: errors.New("bad column")}, row: fakeRow{total: 3}},
		},
		{
			name:    "rows_iteration_fails",
			querier: &fakeQuerier{rows: &fakeRows{rowsErr: errors.New("stream aborted")}, row: fakeRow{total: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, count := listQueries(where, 10)

			items, total, err := postgres.RunList(context.Background(), tt.querier, page, count, scanTitle)

			require.Error(t, err)
			assert.Nil(t, items)
			assert.Equal(t, 0, total)
		})
	}
}
