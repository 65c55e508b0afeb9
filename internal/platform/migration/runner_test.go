// Copyright (c) 2026 Meridian LMS. All rights reserved.

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestPgx5URL verifies the scheme rewrite golang-migrate needs to pick its
pgx/v5 driver.
*/
func TestPgx5URL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://app:secret@db:5432/meridian", "pgx5://app:secret@db:5432/meridian"},
		{"postgresql_scheme", "postgresql://app:secret@db:5432/meridian", "pgx5://app:secret@db:5432/meridian"},
		{"already_pgx5", "pgx5://app:secret@db:5432/meridian", "pgx5://app:secret@db:5432/meridian"},
		{"unrelated_scheme", "mysql://app@db/meridian", "mysql://app@db/meridian"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgx5URL(tt.dsn))
		})
	}
}
