// Copyright (c) 2026 Meridian LMS. All rights reserved.

package sec

// # User Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Platform operator, may act across tenant boundaries
	RoleSuperAdmin Role = "superadmin"

	// Full administrative control within a single tenant
	RoleAdmin Role = "admin"

	// Can author and manage courses, documents, and quizzes for a tenant
	RoleInstructor Role = "instructor"

	// Default role for standard registered users
	RoleMember Role = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// OneOf reports whether the role is present in the allowed set.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// IsValid reports whether the string maps to a known role.
func (r Role) IsValid() bool {
	return r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleSuperAdmin:
		return 40
	case RoleAdmin:
		return 30
	case RoleInstructor:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
