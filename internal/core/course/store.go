// Copyright (c) 2026 Meridian LMS. All rights reserved.

package course

import (
	"context"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Repository defines the data access contract for courses. Every method is
// scope-aware; there is no unscoped way to reach a course row.
type Repository interface {
	ListCourses(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Course, int, error)
	GetCourse(context context.Context, scope listquery.Scope, id string) (*Course, error)
	CreateCourse(context context.Context, course *Course) error
	UpdateCourse(context context.Context, scope listquery.Scope, course *Course) error
	DeleteCourse(context context.Context, scope listquery.Scope, id string) error
}
