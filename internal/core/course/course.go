// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package course implements the course catalog of a tenant.

A course is the unit instructors publish and members enroll into. The
package owns the course lifecycle (draft, published, archived) and exposes
the guarded list endpoint every admin screen is built on.
*/
package course

import (
	"time"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Course represents one course owned by a tenant.
type Course struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Level        string     `json:"level"`
	InstructorID string     `json:"instructor_id"`
	PriceCents   int        `json:"price_cents"`
	PublishedAt  *time.Time `json:"published_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Lifecycle states of a course.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// # Field Identifiers

const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldStatus       = "status"
	FieldLevel        = "level"
	FieldInstructorID = "instructor_id"
	FieldPriceCents   = "price_cents"
)

// ListSpec is the queryable surface of the courses list endpoint.
var ListSpec = listquery.Spec{
	Fields: listquery.FieldMap{
		"title":         "title",
		"status":        "status",
		"level":         "level",
		"instructor_id": "instructor_id",
		"price_cents":   "price_cents",
		"created_at":    "created_at",
		"published_at":  "published_at",
	},
	Searchable:  []string{"title", "description"},
	DateFields:  []string{"created_at", "published_at"},
	DefaultSort: listquery.Sort{Column: "created_at", Order: listquery.OrderDesc},
}
