// Copyright (c) 2026 Meridian LMS. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
//
// A page beyond the last one simply produces an offset past the result set;
// the query returns zero rows rather than an error.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
//
// TotalPages is ceil(Total/Limit); a Total of zero yields zero pages.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Page values below 1 and non-numeric input fall back to [DefaultPage].
// Limit values below 1 fall back to [DefaultLimit]; values above [MaxLimit]
// are clamped down to it. Malformed pagination input never fails a request.
func FromRequest(r *http.Request) Params {
	return FromValues(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
}

// FromValues builds clamped [Params] from raw query-string values.
func FromValues(rawPage, rawLimit string) Params {
	page := parseInt(rawPage, DefaultPage)
	limit := parseInt(rawLimit, DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseInt parses a single integer value with a fallback default.
func parseInt(raw string, defaultVal int) int {
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
