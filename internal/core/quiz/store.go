// Copyright (c) 2026 Meridian LMS. All rights reserved.

package quiz

import (
	"context"

	"github.com/meridianlms/meridian/pkg/listquery"
)

type Repository interface {
	ListQuizzes(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Quiz, int, error)
	GetQuiz(context context.Context, scope listquery.Scope, id string) (*Quiz, error)
	CreateQuiz(context context.Context, quiz *Quiz) error
	UpdateQuiz(context context.Context, scope listquery.Scope, quiz *Quiz) error
	DeleteQuiz(context context.Context, scope listquery.Scope, id string) error
}
