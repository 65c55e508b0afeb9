// Copyright (c) 2026 Meridian LMS. All rights reserved.

package tenant_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/internal/tenant"
	"github.com/meridianlms/meridian/pkg/listquery"
)

const knownTenantID = "0190e1a4-7b1a-7c3d-9e2f-1a2b3c4d5e6f"

// memoryRepository backs the service with an in-memory tenant map.
type memoryRepository struct {
	tenants map[string]*tenant.Tenant

	created *tenant.Tenant
	updated *tenant.Tenant
	deleted string
}

func newMemoryRepository(seed ...*tenant.Tenant) *memoryRepository {
	repo := &memoryRepository{tenants: make(map[string]*tenant.Tenant)}
	for _, t := range seed {
		repo.tenants[t.ID] = t
	}
	return repo
}

func (r *memoryRepository) ListTenants(_ context.Context, _ listquery.Request, _ listquery.Scope) ([]*tenant.Tenant, int, error) {
	return nil, 0, nil
}

func (r *memoryRepository) GetTenant(_ context.Context, id string) (*tenant.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, apperr.NotFound("Tenant")
	}
	copied := *t
	return &copied, nil
}

func (r *memoryRepository) CreateTenant(_ context.Context, t *tenant.Tenant) error {
	r.created = t
	r.tenants[t.ID] = t
	return nil
}

func (r *memoryRepository) UpdateTenant(_ context.Context, t *tenant.Tenant) error {
	r.updated = t
	r.tenants[t.ID] = t
	return nil
}

func (r *memoryRepository) DeleteTenant(_ context.Context, id string) error {
	if _, ok := r.tenants[id]; !ok {
		return apperr.NotFound("Tenant")
	}
	r.deleted = id
	delete(r.tenants, id)
	return nil
}

func newTestService(repo tenant.Repository) *tenant.Service {
	return tenant.NewService(repo, slog.Default())
}

func claimsFor(role sec.Role, tenantID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "user-1", Role: string(role), TenantID: tenantID}
}

/*
TestResolveScope covers the four resolution rules: superadmin cross-tenant,
superadmin pinned by override, pinned caller ignoring the override, and a
caller with no resolvable tenant.
*/
func TestResolveScope(t *testing.T) {
	repo := newMemoryRepository(&tenant.Tenant{ID: knownTenantID, Name: "Acme"})
	service := newTestService(repo)

	t.Run("superadmin_without_override_is_cross_tenant", func(t *testing.T) {
		scope, err := service.ResolveScope(context.Background(), claimsFor(sec.RoleSuperAdmin, ""), "")

		require.NoError(t, err)
		assert.True(t, scope.CrossTenant)
		assert.Empty(t, scope.TenantID)
	})

	t.Run("superadmin_with_override_is_pinned", func(t *testing.T) {
		scope, err := service.ResolveScope(context.Background(), claimsFor(sec.RoleSuperAdmin, ""), knownTenantID)

		require.NoError(t, err)
		assert.False(t, scope.CrossTenant)
		assert.Equal(t, knownTenantID, scope.TenantID)
	})

	t.Run("superadmin_override_must_be_uuid", func(t *testing.T) {
		_, err := service.ResolveScope(context.Background(), claimsFor(sec.RoleSuperAdmin, ""), "acme")

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("superadmin_override_must_exist", func(t *testing.T) {
		_, err := service.ResolveScope(context.Background(), claimsFor(sec.RoleSuperAdmin, ""), "0190e1a4-7b1a-7c3d-9e2f-000000000000")

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("pinned_caller_ignores_override", func(t *testing.T) {
		scope, err := service.ResolveScope(context.Background(), claimsFor(sec.RoleAdmin, "tenant-own"), knownTenantID)

		require.NoError(t, err)
		assert.Equal(t, "tenant-own", scope.TenantID)
		assert.False(t, scope.CrossTenant)
	})

	t.Run("no_tenant_claim_is_rejected", func(t *testing.T) {
		_, err := service.ResolveScope(context.Background(), claimsFor(sec.RoleMember, ""), "")

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "TENANT_MISSING", appErr.Code)
	})
}

/*
TestCreateTenant verifies onboarding defaults: trial status, starter plan,
and a slug derived from the display name.
*/
func TestCreateTenant(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	created, err := service.CreateTenant(context.Background(), tenant.CreateInput{
		Name:         "Acme Learning Co.",
		ContactEmail: "ops@acme.test",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "acme-learning-co", created.Slug)
	assert.Equal(t, tenant.PlanStarter, created.Plan)
	assert.Equal(t, tenant.StatusTrial, created.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, created.ID, repo.created.ID)
}

/*
TestCreateTenant_Validation verifies the rejected inputs never reach the
repository.
*/
func TestCreateTenant_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input tenant.CreateInput
	}{
		{"missing_name", tenant.CreateInput{ContactEmail: "ops@acme.test"}},
		{"bad_email", tenant.CreateInput{Name: "Acme", ContactEmail: "nope"}},
		{"unknown_plan", tenant.CreateInput{Name: "Acme", Plan: "platinum", ContactEmail: "ops@acme.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			service := newTestService(repo)

			_, err := service.CreateTenant(context.Background(), tt.input)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Nil(t, repo.created)
		})
	}
}

/*
TestUpdateTenant verifies partial updates: nil fields stay untouched and the
merged record is re-validated as a whole.
*/
func TestUpdateTenant(t *testing.T) {
	existing := &tenant.Tenant{
		ID:           knownTenantID,
		Name:         "Acme",
		Slug:         "acme",
		Plan:         tenant.PlanStarter,
		Status:       tenant.StatusTrial,
		ContactEmail: "ops@acme.test",
	}

	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		repo := newMemoryRepository(existing)
		service := newTestService(repo)

		plan := tenant.PlanGrowth
		updated, err := service.UpdateTenant(context.Background(), knownTenantID, tenant.UpdateInput{Plan: &plan})
		require.NoError(t, err)

		assert.Equal(t, tenant.PlanGrowth, updated.Plan)
		assert.Equal(t, "Acme", updated.Name)
		assert.Equal(t, tenant.StatusTrial, updated.Status)
	})

	t.Run("merged_record_is_validated", func(t *testing.T) {
		repo := newMemoryRepository(existing)
		service := newTestService(repo)

		status := "deleted"
		_, err := service.UpdateTenant(context.Background(), knownTenantID, tenant.UpdateInput{Status: &status})

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Nil(t, repo.updated)
	})

	t.Run("unknown_tenant", func(t *testing.T) {
		repo := newMemoryRepository()
		service := newTestService(repo)

		name := "New Name"
		_, err := service.UpdateTenant(context.Background(), knownTenantID, tenant.UpdateInput{Name: &name})

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

/*
TestDeleteTenant verifies deletion reaches the repository and unknown ids
propagate the storage error.
*/
func TestDeleteTenant(t *testing.T) {
	repo := newMemoryRepository(&tenant.Tenant{ID: knownTenantID, Name: "Acme"})
	service := newTestService(repo)

	require.NoError(t, service.DeleteTenant(context.Background(), knownTenantID))
	assert.Equal(t, knownTenantID, repo.deleted)

	err := service.DeleteTenant(context.Background(), knownTenantID)
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
