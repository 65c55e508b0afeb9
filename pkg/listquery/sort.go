// Copyright (c) 2026 Meridian LMS. All rights reserved.

package listquery

import "strings"

// Order is a sort direction restricted to the asc/desc enum.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// SQL returns the SQL keyword for the direction.
func (o Order) SQL() string {
	if o == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// NormalizeOrder coerces any raw direction string into the enum.
// Everything that is not "desc" (case-insensitive) becomes ascending.
func NormalizeOrder(raw string) Order {
	if strings.EqualFold(strings.TrimSpace(raw), string(OrderDesc)) {
		return OrderDesc
	}
	return OrderAsc
}

// ParseSortParam splits a "field" or "field:direction" sort parameter.
// The field is returned as requested; resolution against the Field Map
// happens later in [ResolveSort].
func ParseSortParam(raw string) (field string, order Order) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", OrderAsc
	}

	field, rawOrder, _ := strings.Cut(raw, ":")
	return strings.TrimSpace(field), NormalizeOrder(rawOrder)
}

// ResolveSort resolves the requested sort field and direction against the
// resource's Field Map.
//
// An absent or unresolvable field yields the spec's DefaultSort, replacing
// both column and direction, so every list query carries a deterministic,
// total order and pagination stays stable across pages.
func ResolveSort(requestedField string, requestedOrder Order, spec Spec) Sort {
	if requestedField != "" {
		if column, ok := spec.Fields.Resolve(requestedField); ok {
			return Sort{Column: column, Order: requestedOrder}
		}
	}
	return spec.DefaultSort
}

// OrderBy renders the resolved sort for the request as an ORDER BY term,
// with the resource's primary key as a tiebreaker for rows that compare
// equal on the sort column.
func OrderBy(request Request, spec Spec) string {
	resolved := ResolveSort(request.SortField, request.SortOrder, spec)
	return resolved.Column + " " + resolved.Order.SQL() + ", id " + resolved.Order.SQL()
}
