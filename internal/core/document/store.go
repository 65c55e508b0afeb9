// Copyright (c) 2026 Meridian LMS. All rights reserved.

package document

import (
	"context"

	"github.com/meridianlms/meridian/pkg/listquery"
)

type Repository interface {
	ListDocuments(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Document, int, error)
	GetDocument(context context.Context, scope listquery.Scope, id string) (*Document, error)
	CreateDocument(context context.Context, document *Document) error
	UpdateDocument(context context.Context, scope listquery.Scope, document *Document) error
	DeleteDocument(context context.Context, scope listquery.Scope, id string) error
}
