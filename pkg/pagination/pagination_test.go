// Copyright (c) 2026 Meridian LMS. All rights reserved.

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianlms/meridian/pkg/pagination"
)

/*
TestFromValues_Clamping verifies that adversarial page/limit input always
degrades to safe defaults instead of failing.
*/
func TestFromValues_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		rawPage   string
		rawLimit  string
		wantPage  int
		wantLimit int
	}{
		{"defaults_when_absent", "", "", 1, pagination.DefaultLimit},
		{"normal_values", "3", "25", 3, 25},
		{"zero_page", "0", "10", 1, 10},
		{"negative_page", "-5", "10", 1, 10},
		{"zero_limit", "2", "0", 2, pagination.DefaultLimit},
		{"negative_limit", "2", "-1", 2, pagination.DefaultLimit},
		{"limit_above_max", "1", "5000", 1, pagination.MaxLimit},
		{"limit_at_max", "1", "100", 1, pagination.MaxLimit},
		{"garbage_page", "abc", "10", 1, 10},
		{"garbage_limit", "1", "abc", 1, pagination.DefaultLimit},
		{"float_input", "1.5", "10.9", 1, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromValues(tt.rawPage, tt.rawLimit)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)

			// The effective limit must always be bounded.
			assert.GreaterOrEqual(t, params.Limit, 1)
			assert.LessOrEqual(t, params.Limit, pagination.MaxLimit)
		})
	}
}

/*
TestParams_Offset verifies the page-to-row-offset arithmetic.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 3, Limit: 25}.Offset())
}

/*
TestNewMeta_TotalPages verifies the ceiling division used for totalPages.
*/
func TestNewMeta_TotalPages(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		limit     int
		wantPages int
	}{
		{"empty_result", 0, 10, 0},
		{"exact_fit", 100, 10, 10},
		{"with_remainder", 47, 10, 5},
		{"three_pages_of_ten", 25, 10, 3},
		{"single_row", 1, 10, 1},
		{"limit_one", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, tt.limit, tt.total)

			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
