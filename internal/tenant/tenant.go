// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package tenant implements the tenant directory of the platform.

A tenant is a paying customer organization. Every other resource in the
system hangs off a tenant, so this package plays two roles: the
superadmin-facing CRUD surface under /tenants, and the scope resolver the
access pipeline consults to pin each request to its tenant boundary.
*/
package tenant

import (
	"time"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Tenant represents one customer organization.
type Tenant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Plan         string    `json:"plan"`
	Status       string    `json:"status"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Lifecycle states of a tenant.
const (
	StatusTrial     = "trial"
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Billing plans a tenant can be on.
const (
	PlanStarter    = "starter"
	PlanGrowth     = "growth"
	PlanEnterprise = "enterprise"
)

// # Field Identifiers

const (
	FieldName         = "name"
	FieldPlan         = "plan"
	FieldStatus       = "status"
	FieldContactEmail = "contact_email"
	FieldTenantID     = "tenant_id"
)

// ListSpec is the queryable surface of the tenants list endpoint.
//
// The tenant column is the primary key itself: when a superadmin pins a
// scope to one tenant, the listing collapses to that single row, and a
// cross-tenant scope sees the whole directory.
var ListSpec = listquery.Spec{
	TenantColumn: "id",
	Fields: listquery.FieldMap{
		"name":       "name",
		"plan":       "plan",
		"status":     "status",
		"created_at": "created_at",
	},
	Searchable:  []string{"name", "slug"},
	DateFields:  []string{"created_at"},
	DefaultSort: listquery.Sort{Column: "created_at", Order: listquery.OrderDesc},
}
