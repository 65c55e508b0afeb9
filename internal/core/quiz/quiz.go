// Copyright (c) 2026 Meridian LMS. All rights reserved.

// Package quiz manages the assessments attached to a tenant's courses.
package quiz

import (
	"time"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Quiz represents one assessment belonging to a course.
type Quiz struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	CourseID         string    `json:"course_id"`
	Title            string    `json:"title"`
	Status           string    `json:"status"`
	QuestionCount    int       `json:"question_count"`
	TimeLimitSeconds int       `json:"time_limit_seconds"`
	PassingScore     int       `json:"passing_score"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Lifecycle states of a quiz.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"
)

const (
	FieldTitle        = "title"
	FieldStatus       = "status"
	FieldCourseID     = "course_id"
	FieldPassingScore = "passing_score"
)

// ListSpec is the queryable surface of the quizzes list endpoint.
var ListSpec = listquery.Spec{
	Fields: listquery.FieldMap{
		"title":      "title",
		"status":     "status",
		"course_id":  "course_id",
		"created_at": "created_at",
	},
	Searchable:  []string{"title"},
	DateFields:  []string{"created_at"},
	DefaultSort: listquery.Sort{Column: "created_at", Order: listquery.OrderDesc},
}
