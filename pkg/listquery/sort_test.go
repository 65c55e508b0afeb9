// Copyright (c) 2026 Meridian LMS. All rights reserved.

package listquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianlms/meridian/pkg/listquery"
)

/*
TestResolveSort verifies Field Map resolution and the whole-pair fallback:
an unresolvable field replaces the direction too, not just the column.
*/
func TestResolveSort(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		order      listquery.Order
		wantColumn string
		wantOrder  listquery.Order
	}{
		{"resolved", "title", listquery.OrderAsc, "title", listquery.OrderAsc},
		{"resolved_desc", "status", listquery.OrderDesc, "status", listquery.OrderDesc},
		{"absent_falls_back", "", listquery.OrderAsc, "created_at", listquery.OrderDesc},
		{"unknown_falls_back_whole_pair", "password_hash", listquery.OrderAsc, "created_at", listquery.OrderDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := listquery.ResolveSort(tt.field, tt.order, testSpec)

			assert.Equal(t, tt.wantColumn, resolved.Column)
			assert.Equal(t, tt.wantOrder, resolved.Order)
		})
	}
}

/*
TestOrderBy verifies the rendered ORDER BY term carries the primary-key
tiebreaker so pagination is stable for rows that compare equal.
*/
func TestOrderBy(t *testing.T) {
	tests := []struct {
		name    string
		request listquery.Request
		want    string
	}{
		{
			name:    "requested_sort",
			request: listquery.Request{SortField: "title", SortOrder: listquery.OrderAsc},
			want:    "title ASC, id ASC",
		},
		{
			name:    "default_sort",
			request: listquery.Request{},
			want:    "created_at DESC, id DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listquery.OrderBy(tt.request, testSpec))
		})
	}
}

/*
TestNormalizeOrder verifies the direction enum coercion.
*/
func TestNormalizeOrder(t *testing.T) {
	assert.Equal(t, listquery.OrderDesc, listquery.NormalizeOrder("desc"))
	assert.Equal(t, listquery.OrderDesc, listquery.NormalizeOrder(" DESC "))
	assert.Equal(t, listquery.OrderAsc, listquery.NormalizeOrder("asc"))
	assert.Equal(t, listquery.OrderAsc, listquery.NormalizeOrder("sideways"))
	assert.Equal(t, listquery.OrderAsc, listquery.NormalizeOrder(""))
}
