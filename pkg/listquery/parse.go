// Copyright (c) 2026 Meridian LMS. All rights reserved.

package listquery

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/meridianlms/meridian/pkg/pagination"
	"github.com/meridianlms/meridian/pkg/query"
)

// Reserved query parameter names shared by every list endpoint.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSort   = "sort"
	ParamSearch = "search"

	// dateFromSuffix / dateToSuffix extend a date field's public name into
	// its range-bound parameters (e.g. created_at_from, created_at_to).
	dateFromSuffix = "_from"
	dateToSuffix   = "_to"
)

// FilterKind tags the variant carried by a [Filter].
type FilterKind int

const (
	// FilterEquals matches a column against a single value.
	FilterEquals FilterKind = iota
	// FilterIn matches a column against any of several values.
	FilterIn
	// FilterDateRange bounds a column between optional time bounds.
	FilterDateRange
)

// Filter is a tagged-variant filter value. Exactly the fields implied by
// Kind are meaningful; the predicate builder switches exhaustively on Kind
// instead of inspecting dynamic types.
type Filter struct {
	Kind   FilterKind
	Value  string     // FilterEquals
	Values []string   // FilterIn
	From   *time.Time // FilterDateRange, inclusive lower bound
	To     *time.Time // FilterDateRange, exclusive upper bound
}

// Request is the normalized list request. It is constructed once per HTTP
// request by [Parse], treated as immutable afterwards, and discarded when
// the request completes.
type Request struct {
	Page      int
	Limit     int
	SortField string // requested public name, "" if absent
	SortOrder Order
	Search    string
	Filters   map[string]Filter // keyed by public field name
}

// Offset translates the normalized page/limit pair into a row offset.
func (r Request) Offset() int {
	return pagination.Params{Page: r.Page, Limit: r.Limit}.Offset()
}

// BadParamError reports a structured filter value that could not be parsed.
//
// It is the only error [Parse] produces: pagination, sort, and unknown-key
// problems all degrade to defaults instead (availability over strictness).
type BadParamError struct {
	Param string
	Value string
}

func (e *BadParamError) Error() string {
	return fmt.Sprintf("listquery: parameter %q has malformed value %q", e.Param, e.Value)
}

// Parse normalizes raw query parameters into a [Request] against a resource's
// [Spec].
//
// # Rules
//
//   - page/limit: clamped via pkg/pagination; never an error.
//   - sort: "field" or "field:direction"; resolution is deferred to
//     [ResolveSort] so unresolved fields fall back instead of failing.
//   - search: trimmed; empty means absent.
//   - equality filters: accepted only for non-date keys present in
//     spec.Fields; a comma-separated value becomes a [FilterIn].
//   - date filters: accepted only for spec.DateFields via the _from/_to
//     parameters; an unparsable bound returns [*BadParamError].
//
// Unknown parameter keys are ignored entirely.
func Parse(values url.Values, spec Spec) (Request, error) {
	params := pagination.FromValues(values.Get(ParamPage), values.Get(ParamLimit))

	request := Request{
		Page:    params.Page,
		Limit:   params.Limit,
		Search:  strings.TrimSpace(values.Get(ParamSearch)),
		Filters: make(map[string]Filter),
	}
	request.SortField, request.SortOrder = ParseSortParam(values.Get(ParamSort))

	// Equality / membership filters: driven by the allow-list, never by the
	// inbound parameter names.
	for publicName := range spec.Fields {
		if spec.isDateField(publicName) {
			continue
		}

		parts := query.StringSlice(values.Get(publicName))
		switch len(parts) {
		case 0:
			// absent or blank; nothing to filter
		case 1:
			request.Filters[publicName] = Filter{Kind: FilterEquals, Value: parts[0]}
		default:
			request.Filters[publicName] = Filter{Kind: FilterIn, Values: parts}
		}
	}

	// Date-range filters.
	for _, publicName := range spec.DateFields {
		from, err := parseDateBound(values.Get(publicName+dateFromSuffix), publicName+dateFromSuffix, false)
		if err != nil {
			return Request{}, err
		}

		to, err := parseDateBound(values.Get(publicName+dateToSuffix), publicName+dateToSuffix, true)
		if err != nil {
			return Request{}, err
		}

		if from != nil || to != nil {
			request.Filters[publicName] = Filter{Kind: FilterDateRange, From: from, To: to}
		}
	}

	return request, nil
}

// parseDateBound parses one optional range bound.
//
// Accepted layouts are RFC 3339 and plain dates (2006-01-02). Because the
// upper bound is applied exclusively, a date-only upper bound is advanced by
// one day so the named day stays included.
func parseDateBound(raw, param string, isUpper bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		if isUpper {
			t = t.AddDate(0, 0, 1)
		}
		return &t, nil
	}

	return nil, &BadParamError{Param: param, Value: raw}
}
