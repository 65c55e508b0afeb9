// Copyright (c) 2026 Meridian LMS. All rights reserved.

// Package query holds small helpers for reading comma-separated values
// out of query strings and environment variables.
package query

import "strings"

// StringSlice splits a comma-separated value into a trimmed slice of
// non-empty strings. An empty input yields nil.
//
// Used for multi-value filter parameters ("status=draft,published"),
// forwarded-for header chains, and CORS origin lists from config.
func StringSlice(value string) []string {
	if value == "" {
		return nil
	}

	var parts []string
	for _, part := range strings.Split(value, ",") {
		if clean := strings.TrimSpace(part); clean != "" {
			parts = append(parts, clean)
		}
	}
	return parts
}
