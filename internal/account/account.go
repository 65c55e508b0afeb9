// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package account implements staff administration inside a tenant.

It is the admin-facing view over the same user rows the auth package
authenticates against: listing the tenant's staff, inviting new members,
changing roles, and suspending accounts. Password hashes never leave this
package in a response body.
*/
package account

import (
	"time"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Account represents one staff member as seen by a tenant admin.
// A nil TenantID marks a platform superadmin row; those only surface in
// cross-tenant listings.
type Account struct {
	ID          string     `json:"id"`
	TenantID    *string    `json:"tenant_id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Lifecycle states of an account.
const (
	StatusActive    = "active"
	StatusInvited   = "invited"
	StatusSuspended = "suspended"
)

// # Field Identifiers

const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldRole        = "role"
	FieldStatus      = "status"
)

// ListSpec is the queryable surface of the accounts list endpoint.
var ListSpec = listquery.Spec{
	Fields: listquery.FieldMap{
		"username":      "username",
		"email":         "email",
		"role":          "role",
		"status":        "status",
		"created_at":    "created_at",
		"last_login_at": "last_login_at",
	},
	Searchable:  []string{"username", "email", "display_name"},
	DateFields:  []string{"created_at", "last_login_at"},
	DefaultSort: listquery.Sort{Column: "created_at", Order: listquery.OrderDesc},
}
