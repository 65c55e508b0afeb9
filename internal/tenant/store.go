// Copyright (c) 2026 Meridian LMS. All rights reserved.

package tenant

import (
	"context"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Repository defines the data access contract for the tenant directory.
type Repository interface {
	ListTenants(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Tenant, int, error)
	GetTenant(context context.Context, id string) (*Tenant, error)
	CreateTenant(context context.Context, tenant *Tenant) error
	UpdateTenant(context context.Context, tenant *Tenant) error
	DeleteTenant(context context.Context, id string) error
}
