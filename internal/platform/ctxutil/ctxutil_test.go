// Copyright (c) 2026 Meridian LMS. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlms/meridian/internal/platform/ctxutil"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/pkg/listquery"
)

/*
TestRequestID verifies round-tripping the request ID and the empty default.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger verifies the attached logger comes back and the fallback is the
process default, never nil.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()

	require.NotNil(t, ctxutil.GetLogger(ctx))

	logger := slog.Default().With("component", "test")
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestIdentity verifies claims round-tripping and the nil-for-anonymous rule.
*/
func TestIdentity(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ctxutil.GetIdentity(ctx))

	claims := &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleInstructor)}
	ctx = ctxutil.WithIdentity(ctx, claims)

	got := ctxutil.GetIdentity(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
}

/*
TestTenantScope verifies the second return distinguishes a genuinely absent
scope from a zero-valued one.
*/
func TestTenantScope(t *testing.T) {
	ctx := context.Background()

	_, ok := ctxutil.GetTenantScope(ctx)
	assert.False(t, ok)

	ctx = ctxutil.WithTenantScope(ctx, listquery.Scope{CrossTenant: true})

	scope, ok := ctxutil.GetTenantScope(ctx)
	require.True(t, ok)
	assert.True(t, scope.CrossTenant)
	assert.Empty(t, scope.TenantID)
}
