// Copyright (c) 2026 Meridian LMS. All rights reserved.

// Package document manages the course material records of a tenant. Only
// metadata lives here; binary storage is handled elsewhere.
package document

import (
	"time"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Document represents one course material record.
type Document struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Material kinds.
const (
	KindPDF     = "pdf"
	KindVideo   = "video"
	KindSlides  = "slides"
	KindArchive = "archive"
)

// Processing states.
const (
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusFailed     = "failed"
)

const (
	FieldTitle    = "title"
	FieldKind     = "kind"
	FieldStatus   = "status"
	FieldCourseID = "course_id"
)

// ListSpec is the queryable surface of the documents list endpoint.
var ListSpec = listquery.Spec{
	Fields: listquery.FieldMap{
		"title":      "title",
		"kind":       "kind",
		"status":     "status",
		"course_id":  "course_id",
		"created_at": "created_at",
	},
	Searchable:  []string{"title"},
	DateFields:  []string{"created_at"},
	DefaultSort: listquery.Sort{Column: "created_at", Order: listquery.OrderDesc},
}
