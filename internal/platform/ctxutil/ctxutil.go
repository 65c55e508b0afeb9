// Copyright (c) 2026 Meridian LMS. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/meridianlms/meridian/internal/platform/ctxkey"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/pkg/listquery"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithIdentity returns a new context with the authenticated caller claims attached.
func WithIdentity(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyIdentity, claims)
}

// GetIdentity retrieves the [*sec.AuthClaims] from the [context.Context].
// Returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyIdentity).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// # Tenant Scope

// WithTenantScope returns a new context with the resolved tenant scope attached.
//
// Only the guard pipeline's tenant-resolution stage writes this value.
func WithTenantScope(ctx context.Context, scope listquery.Scope) context.Context {
	return context.WithValue(ctx, ctxkey.KeyTenantScope, scope)
}

// GetTenantScope retrieves the resolved [listquery.Scope].
// The second return is false when no tenant stage ran for this request.
func GetTenantScope(ctx context.Context) (listquery.Scope, bool) {
	scope, ok := ctx.Value(ctxkey.KeyTenantScope).(listquery.Scope)
	return scope, ok
}
