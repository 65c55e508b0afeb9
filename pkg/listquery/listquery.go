// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package listquery is the tenant-scoped list-query engine shared by every
resource list endpoint (courses, documents, quizzes, accounts, tenants,
subscriptions).

It turns an untrusted HTTP query string into a bounded, tenant-isolated SQL
predicate plus a deterministic sort, in four steps:

  - Field Map: a per-resource allow-list translating public field names to
    physical columns. The single chokepoint preventing column injection via
    sort or filter keys.
  - Parse: normalizes page/limit/sort/search and per-field filters into an
    immutable [Request]. Malformed pagination and sort input degrades to
    defaults; only a malformed date bound is a client error.
  - Predicate: composes the mandatory tenant-isolation clause with the
    optional search/filter clauses into a single squirrel conjunction.
  - ResolveSort: resolves the requested sort against the Field Map with a
    per-resource fallback, so result order is always total.

Guarantees, for every resource and every caller:

  - No predicate for tenant-owned data omits the tenant pin unless the
    already-authorized scope is explicitly cross-tenant.
  - No user-supplied string ever reaches SQL as a column reference.
  - The effective limit is always within [1, pagination.MaxLimit].
*/
package listquery

// FieldMap is the per-resource allow-list mapping public field names
// (as used in sort and filter query parameters) to physical column
// references.
//
// It is constructed once at startup and never mutated, so it is safe for
// unlimited concurrent readers. Any requested key absent from the map is
// dropped, never passed through raw.
type FieldMap map[string]string

// Resolve returns the column reference for a public field name.
func (m FieldMap) Resolve(publicName string) (string, bool) {
	column, ok := m[publicName]
	return column, ok
}

// Scope is the resolved tenant boundary a request's data access is pinned to.
//
// It is produced by the guard pipeline AFTER authentication and role checks;
// this package never decides privilege, it only consumes the decision.
type Scope struct {
	// TenantID is the tenant every query is pinned to.
	TenantID string

	// CrossTenant exempts the caller from single-tenant pinning. It is only
	// ever true for a superadmin that did not pin an explicit tenant.
	CrossTenant bool
}

// Sort is a resolved column reference plus direction.
type Sort struct {
	Column string
	Order  Order
}

// Spec describes one resource's queryable surface. One Spec value exists per
// resource type, built at route-registration time next to the entity it
// describes.
type Spec struct {
	// TenantColumn is the column holding the owning tenant. Defaults to
	// "tenant_id"; the tenants resource itself uses "id".
	TenantColumn string

	// Fields is the sort/filter allow-list.
	Fields FieldMap

	// Searchable lists the column references eligible for free-text search.
	// An empty list makes search a no-op for the resource.
	Searchable []string

	// DateFields lists the public field names that accept range filtering
	// via <name>_from / <name>_to parameters. Each must also be present in
	// Fields. Date fields never act as equality filters.
	DateFields []string

	// DefaultSort is applied whenever the requested sort is absent or fails
	// Field Map resolution.
	DefaultSort Sort
}

// tenantColumn returns the configured tenant column or the default.
func (s Spec) tenantColumn() string {
	if s.TenantColumn != "" {
		return s.TenantColumn
	}
	return "tenant_id"
}

// isDateField reports whether the public name is registered for range filtering.
func (s Spec) isDateField(publicName string) bool {
	for _, name := range s.DateFields {
		if name == publicName {
			return true
		}
	}
	return false
}
