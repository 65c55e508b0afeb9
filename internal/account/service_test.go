// Copyright (c) 2026 Meridian LMS. All rights reserved.

package account_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlms/meridian/internal/account"
	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/pkg/listquery"
)

// memoryRepository stores accounts and enforces the scope pin like the SQL
// store does.
type memoryRepository struct {
	accounts map[string]*account.Account

	createdHash string
}

func newMemoryRepository(seed ...*account.Account) *memoryRepository {
	repo := &memoryRepository{accounts: make(map[string]*account.Account)}
	for _, a := range seed {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (r *memoryRepository) visible(a *account.Account, scope listquery.Scope) bool {
	if scope.CrossTenant {
		return true
	}
	return a.TenantID != nil && *a.TenantID == scope.TenantID
}

func (r *memoryRepository) ListAccounts(_ context.Context, _ listquery.Request, scope listquery.Scope) ([]*account.Account, int, error) {
	matched := []*account.Account{}
	for _, a := range r.accounts {
		if r.visible(a, scope) {
			matched = append(matched, a)
		}
	}
	return matched, len(matched), nil
}

func (r *memoryRepository) GetAccount(_ context.Context, scope listquery.Scope, id string) (*account.Account, error) {
	a, ok := r.accounts[id]
	if !ok || !r.visible(a, scope) {
		return nil, apperr.NotFound("Account")
	}
	copied := *a
	return &copied, nil
}

func (r *memoryRepository) CreateAccount(_ context.Context, a *account.Account, passwordHash string) error {
	r.createdHash = passwordHash
	r.accounts[a.ID] = a
	return nil
}

func (r *memoryRepository) UpdateRole(_ context.Context, scope listquery.Scope, id, role string) (*account.Account, error) {
	a, err := r.GetAccount(context.Background(), scope, id)
	if err != nil {
		return nil, err
	}
	a.Role = role
	r.accounts[id] = a
	return a, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, scope listquery.Scope, id, status string) error {
	a, err := r.GetAccount(context.Background(), scope, id)
	if err != nil {
		return err
	}
	a.Status = status
	r.accounts[id] = a
	return nil
}

func newTestService(repo account.Repository) *account.Service {
	return account.NewService(repo, slog.Default())
}

func seedAccount(id, tenantID string, role sec.Role) *account.Account {
	return &account.Account{
		ID:       id,
		TenantID: &tenantID,
		Username: "user-" + id,
		Email:    id + "@acme.test",
		Role:     string(role),
		Status:   account.StatusActive,
	}
}

/*
TestCreateAccount verifies invitation defaults: invited status, member role
when none given, and a bcrypt hash instead of the raw password reaching
storage.
*/
func TestCreateAccount(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	created, err := service.CreateAccount(context.Background(), "tenant-1", account.CreateInput{
		Username: "casey",
		Email:    "casey@acme.test",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NotNil(t, created.TenantID)
	assert.Equal(t, "tenant-1", *created.TenantID)
	assert.Equal(t, string(sec.RoleMember), created.Role)
	assert.Equal(t, account.StatusInvited, created.Status)

	assert.NotEmpty(t, repo.createdHash)
	assert.NotEqual(t, "correct horse", repo.createdHash)
	assert.True(t, sec.CheckPasswordHash("correct horse", repo.createdHash))
}

/*
TestCreateAccount_Validation verifies the rejected inputs, including the
superadmin role which is never assignable through this surface.
*/
func TestCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input account.CreateInput
	}{
		{"missing_username", account.CreateInput{Email: "x@acme.test", Password: "longenough"}},
		{"short_username", account.CreateInput{Username: "ab", Email: "x@acme.test", Password: "longenough"}},
		{"bad_email", account.CreateInput{Username: "casey", Email: "nope", Password: "longenough"}},
		{"short_password", account.CreateInput{Username: "casey", Email: "x@acme.test", Password: "short"}},
		{"superadmin_not_assignable", account.CreateInput{Username: "casey", Email: "x@acme.test", Password: "longenough", Role: string(sec.RoleSuperAdmin)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newMemoryRepository())

			_, err := service.CreateAccount(context.Background(), "tenant-1", tt.input)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

/*
TestChangeRole verifies reassignment within the assignable set and the
protections around it.
*/
func TestChangeRole(t *testing.T) {
	scope := listquery.Scope{TenantID: "tenant-1"}

	t.Run("reassigns_within_assignable_set", func(t *testing.T) {
		repo := newMemoryRepository(seedAccount("acc-1", "tenant-1", sec.RoleMember))
		service := newTestService(repo)

		updated, err := service.ChangeRole(context.Background(), scope, "acc-1", string(sec.RoleInstructor))
		require.NoError(t, err)
		assert.Equal(t, string(sec.RoleInstructor), updated.Role)
	})

	t.Run("superadmin_role_not_grantable", func(t *testing.T) {
		repo := newMemoryRepository(seedAccount("acc-1", "tenant-1", sec.RoleMember))
		service := newTestService(repo)

		_, err := service.ChangeRole(context.Background(), scope, "acc-1", string(sec.RoleSuperAdmin))

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("superadmin_target_protected", func(t *testing.T) {
		repo := newMemoryRepository(seedAccount("acc-root", "tenant-1", sec.RoleSuperAdmin))
		service := newTestService(repo)

		_, err := service.ChangeRole(context.Background(), scope, "acc-root", string(sec.RoleMember))

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
		assert.Equal(t, string(sec.RoleSuperAdmin), repo.accounts["acc-root"].Role)
	})

	t.Run("foreign_tenant_invisible", func(t *testing.T) {
		repo := newMemoryRepository(seedAccount("acc-9", "tenant-2", sec.RoleMember))
		service := newTestService(repo)

		_, err := service.ChangeRole(context.Background(), scope, "acc-9", string(sec.RoleAdmin))

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

/*
TestSuspend verifies suspension keeps the row and refuses superadmin targets.
*/
func TestSuspend(t *testing.T) {
	scope := listquery.Scope{TenantID: "tenant-1"}

	t.Run("suspends_and_keeps_history", func(t *testing.T) {
		repo := newMemoryRepository(seedAccount("acc-1", "tenant-1", sec.RoleMember))
		service := newTestService(repo)

		require.NoError(t, service.Suspend(context.Background(), scope, "acc-1"))

		kept, ok := repo.accounts["acc-1"]
		require.True(t, ok, "the row must survive suspension")
		assert.Equal(t, account.StatusSuspended, kept.Status)
	})

	t.Run("superadmin_target_protected", func(t *testing.T) {
		repo := newMemoryRepository(seedAccount("acc-root", "tenant-1", sec.RoleSuperAdmin))
		service := newTestService(repo)

		err := service.Suspend(context.Background(), scope, "acc-root")

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})
}
