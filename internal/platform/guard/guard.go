// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package guard implements the ordered access pipeline protecting every
resource route: authentication, then tenant resolution, then role
authorization.

# Architecture

A pipeline is an explicit, ordered slice of [Stage] values evaluated
sequentially per request. Each stage either continues with an enriched
context or rejects with a terminal error; after the first rejection no
further stage runs and no query is ever constructed. Ordering is carried by
the slice, never by registration side effects:

	router.Use(guard.Pipeline(
	    guard.Authenticate(verifier),
	    guard.ResolveTenant(directory),
	    guard.RequireRole(sec.RoleAdmin, sec.RoleInstructor),
	))

Authentication is deliberately first: it is the cheapest check, and an
unauthenticated caller must learn nothing about tenant or role policy.
*/
package guard

import (
	"context"
	"net/http"
	"strings"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/constants"
	"github.com/meridianlms/meridian/internal/platform/ctxutil"
	"github.com/meridianlms/meridian/internal/platform/respond"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/pkg/listquery"
)

// Stage is one step of the access pipeline.
//
// A stage returns the (possibly enriched) context to continue with, or a
// non-nil error to reject the request. Stages must be pure with respect to
// the response writer; rejection rendering is owned by [Pipeline].
type Stage func(ctx context.Context, request *http.Request) (context.Context, error)

// TokenVerifier verifies bearer tokens for the authentication stage.
//
// # Why an interface?
//
// It decouples the guard from the concrete [sec.TokenService], allowing
// tests to inject static verifiers.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// TenantDirectory resolves the effective tenant scope for an authenticated
// caller, validating any explicit tenant override against the directory.
type TenantDirectory interface {
	ResolveScope(ctx context.Context, claims *sec.AuthClaims, requestedTenantID string) (listquery.Scope, error)
}

// Pipeline folds the ordered stages into a single middleware.
//
// Stages run strictly in the given order; the first rejection is rendered
// through [respond.Error] and short-circuits everything downstream,
// including the handler.
func Pipeline(stages ...Stage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()

			for _, stage := range stages {
				nextCtx, err := stage(ctx, request)
				if err != nil {
					respond.Error(writer, request, err)
					return
				}
				ctx = nextCtx
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Stages

// Authenticate resolves the caller identity from the Authorization header.
//
// # Flow
//  1. Require an 'Authorization: Bearer <token>' header.
//  2. Verify the JWT via the injected [TokenVerifier].
//  3. Attach [*sec.AuthClaims] to the context for downstream stages.
//
// Absent or invalid credentials terminate with 401 before any tenant or
// role information is consulted.
func Authenticate(verifier TokenVerifier) Stage {
	return func(ctx context.Context, request *http.Request) (context.Context, error) {
		authHeader := request.Header.Get("Authorization")
		if authHeader == "" {
			return ctx, apperr.Unauthorized("Authentication required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return ctx, apperr.Unauthorized("Invalid authorization format")
		}

		claims, err := verifier.VerifyToken(parts[1])
		if err != nil {
			return ctx, apperr.Unauthorized("Invalid or expired token")
		}

		return ctxutil.WithIdentity(ctx, claims), nil
	}
}

// ResolveTenant resolves the effective tenant scope for the authenticated
// caller and attaches it to the context.
//
// # Resolution rules
//
//   - A tenant-pinned caller always receives their own tenant; the
//     tenant_id query parameter is ignored for them.
//   - A superadmin with an explicit tenant_id parameter is pinned to that
//     tenant after the directory confirms it exists.
//   - A superadmin without an override receives cross-tenant scope.
//   - A caller with no resolvable tenant terminates with TENANT_MISSING.
//
// Must run after [Authenticate]; a missing identity is treated as a
// programming error in route wiring and rejected as unauthenticated.
func ResolveTenant(directory TenantDirectory) Stage {
	return func(ctx context.Context, request *http.Request) (context.Context, error) {
		claims := ctxutil.GetIdentity(ctx)
		if claims == nil {
			return ctx, apperr.Unauthorized("Authentication required")
		}

		requested := request.URL.Query().Get(constants.ParamTenantID)

		scope, err := directory.ResolveScope(ctx, claims, requested)
		if err != nil {
			return ctx, err
		}

		return ctxutil.WithTenantScope(ctx, scope), nil
	}
}

// RequireRole authorizes the caller against an explicit allow-list of roles.
//
// Runs after [Authenticate] (and typically [ResolveTenant]); an
// insufficient role terminates with 403.
func RequireRole(allowed ...sec.Role) Stage {
	return func(ctx context.Context, request *http.Request) (context.Context, error) {
		claims := ctxutil.GetIdentity(ctx)
		if claims == nil {
			return ctx, apperr.Unauthorized("Authentication required")
		}

		if !sec.Role(claims.Role).OneOf(allowed...) {
			return ctx, apperr.Forbidden("Insufficient permissions")
		}

		return ctx, nil
	}
}

// # Handler helpers

// TenantScope returns the scope resolved by [ResolveTenant] for this request.
//
// Handlers behind a tenant-scoped pipeline call this instead of reading
// claims directly, so no handler can accidentally widen its own scope.
func TenantScope(ctx context.Context) (listquery.Scope, error) {
	scope, ok := ctxutil.GetTenantScope(ctx)
	if !ok {
		return listquery.Scope{}, apperr.TenantMissing()
	}
	return scope, nil
}

// PinnedTenant returns the concrete tenant a write must land in.
//
// Cross-tenant scope is a read affordance; creating a resource needs one
// owning tenant, so a superadmin must pin one via the override parameter
// before writing.
func PinnedTenant(ctx context.Context) (string, error) {
	scope, err := TenantScope(ctx)
	if err != nil {
		return "", err
	}
	if scope.CrossTenant || scope.TenantID == "" {
		return "", apperr.TenantMissing()
	}
	return scope.TenantID, nil
}
