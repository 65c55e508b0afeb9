// Copyright (c) 2026 Meridian LMS. All rights reserved.

package account

import (
	"context"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Repository defines the data access contract for staff administration.
// CreateAccount receives the bcrypt hash separately; the hash is write-only
// from this package's point of view.
type Repository interface {
	ListAccounts(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Account, int, error)
	GetAccount(context context.Context, scope listquery.Scope, id string) (*Account, error)
	CreateAccount(context context.Context, account *Account, passwordHash string) error
	UpdateRole(context context.Context, scope listquery.Scope, id, role string) (*Account, error)
	UpdateStatus(context context.Context, scope listquery.Scope, id, status string) error
}
