// Copyright (c) 2026 Meridian LMS. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianlms/meridian/internal/platform/sec"
)

/*
TestRole_AtLeast verifies the role hierarchy comparisons.
*/
func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.Role
		target sec.Role
		want   bool
	}{
		{"superadmin_over_admin", sec.RoleSuperAdmin, sec.RoleAdmin, true},
		{"admin_over_instructor", sec.RoleAdmin, sec.RoleInstructor, true},
		{"instructor_over_member", sec.RoleInstructor, sec.RoleMember, true},
		{"equal_roles", sec.RoleAdmin, sec.RoleAdmin, true},
		{"member_not_instructor", sec.RoleMember, sec.RoleInstructor, false},
		{"admin_not_superadmin", sec.RoleAdmin, sec.RoleSuperAdmin, false},
		{"unknown_below_everything", sec.Role("ghost"), sec.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}

/*
TestRole_OneOf verifies allow-list membership checks.
*/
func TestRole_OneOf(t *testing.T) {
	assert.True(t, sec.RoleInstructor.OneOf(sec.RoleAdmin, sec.RoleInstructor))
	assert.False(t, sec.RoleMember.OneOf(sec.RoleAdmin, sec.RoleInstructor))
	assert.False(t, sec.RoleMember.OneOf())
}

/*
TestRole_IsValid verifies the enum boundary.
*/
func TestRole_IsValid(t *testing.T) {
	for _, role := range []sec.Role{sec.RoleSuperAdmin, sec.RoleAdmin, sec.RoleInstructor, sec.RoleMember} {
		assert.True(t, role.IsValid(), string(role))
	}

	assert.False(t, sec.Role("").IsValid())
	assert.False(t, sec.Role("root").IsValid())
	assert.False(t, sec.Role("Admin").IsValid(), "roles are case-sensitive")
}
