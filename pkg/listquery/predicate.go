// Copyright (c) 2026 Meridian LMS. All rights reserved.

package listquery

import (
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Predicate composes the normalized request plus the mandatory tenant
// isolation clause into a single conjunctive condition.
//
// # Clause order
//
//  1. Tenant pin (tenant_column = scope.TenantID) — always first, omitted
//     only when scope.CrossTenant is true, which the guard pipeline grants
//     exclusively to verified superadmins.
//  2. Free-text search: OR-group of case-insensitive partial matches over
//     spec.Searchable. No-op when the resource declares no searchable
//     columns.
//  3. One clause per filter, re-validated against the Field Map even though
//     [Parse] already dropped unknown keys.
//
// With no clauses at all (cross-tenant, no filters) the conjunction renders
// as an explicit always-true condition rather than an absent WHERE, so an
// unbounded query is always a visible, deliberate artifact.
func Predicate(request Request, spec Spec, scope Scope) sq.And {
	conjunction := sq.And{}

	if !scope.CrossTenant {
		conjunction = append(conjunction, sq.Eq{spec.tenantColumn(): scope.TenantID})
	}

	if request.Search != "" && len(spec.Searchable) > 0 {
		pattern := "%" + escapeLikePattern(request.Search) + "%"
		group := sq.Or{}
		for _, column := range spec.Searchable {
			group = append(group, sq.ILike{column: pattern})
		}
		conjunction = append(conjunction, group)
	}

	// Filter names are visited in sorted order so the generated SQL text is
	// stable across requests (statement cache friendly, testable).
	for _, publicName := range sortedFilterNames(request.Filters) {
		column, ok := spec.Fields.Resolve(publicName)
		if !ok {
			continue
		}

		filter := request.Filters[publicName]
		switch filter.Kind {
		case FilterEquals:
			conjunction = append(conjunction, sq.Eq{column: filter.Value})
		case FilterIn:
			conjunction = append(conjunction, sq.Eq{column: filter.Values})
		case FilterDateRange:
			if filter.From != nil {
				conjunction = append(conjunction, sq.GtOrEq{column: *filter.From})
			}
			if filter.To != nil {
				conjunction = append(conjunction, sq.Lt{column: *filter.To})
			}
		}
	}

	return conjunction
}

// ScopeEq composes a single-column equality with the mandatory tenant pin,
// mirroring what [Predicate] does for lists. Single-row reads and writes go
// through it so a tenant can never address another tenant's row by id.
func ScopeEq(spec Spec, scope Scope, column, value string) sq.And {
	conjunction := sq.And{}
	if !scope.CrossTenant {
		conjunction = append(conjunction, sq.Eq{spec.tenantColumn(): scope.TenantID})
	}
	return append(conjunction, sq.Eq{column: value})
}

// sortedFilterNames returns the filter map's keys in lexical order.
func sortedFilterNames(filters map[string]Filter) []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// escapeLikePattern neutralizes LIKE metacharacters in user-supplied search
// text so "50%" matches literally instead of acting as a wildcard.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
