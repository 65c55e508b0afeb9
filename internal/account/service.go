// Copyright (c) 2026 Meridian LMS. All rights reserved.

package account

import (
	"context"
	"log/slog"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/internal/platform/validate"
	"github.com/meridianlms/meridian/pkg/listquery"
	"github.com/meridianlms/meridian/pkg/uuidv7"
)

// assignableRoles are the roles a tenant admin may hand out. Superadmin is
// a platform-level role and is never assignable through this surface.
var assignableRoles = []string{
	string(sec.RoleAdmin),
	string(sec.RoleInstructor),
	string(sec.RoleMember),
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAccounts(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Account, int, error) {
	return service.repo.ListAccounts(context, request, scope)
}

// CreateInput holds the data required to invite a staff member.
type CreateInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	Role        string
}

func (service *Service) CreateAccount(context context.Context, tenantID string, input CreateInput) (*Account, error) {
	if input.Role == "" {
		input.Role = string(sec.RoleMember)
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		MaxLen(FieldUsername, input.Username, 60).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8).
		OneOf(FieldRole, input.Role, assignableRoles...)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	account := &Account{
		ID:          uuidv7.Must(),
		TenantID:    &tenantID,
		Username:    input.Username,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Role:        input.Role,
		Status:      StatusInvited,
	}

	if err := service.repo.CreateAccount(context, account, passwordHash); err != nil {
		return nil, err
	}

	service.logger.Info("account_created",
		slog.String("account_id", account.ID),
		slog.String("tenant_id", tenantID),
		slog.String("role", account.Role),
	)
	return account, nil
}

// ChangeRole reassigns a staff member's role within the assignable set.
// Demoting or promoting a superadmin through this surface is rejected
// before any write happens.
func (service *Service) ChangeRole(context context.Context, scope listquery.Scope, id, role string) (*Account, error) {
	validator := &validate.Validator{}
	validator.Required(FieldRole, role).OneOf(FieldRole, role, assignableRoles...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	current, err := service.repo.GetAccount(context, scope, id)
	if err != nil {
		return nil, err
	}
	if sec.Role(current.Role) == sec.RoleSuperAdmin {
		return nil, apperr.Forbidden("Superadmin accounts cannot be managed here")
	}

	account, err := service.repo.UpdateRole(context, scope, id, role)
	if err != nil {
		return nil, err
	}

	service.logger.Info("account_role_changed",
		slog.String("account_id", id),
		slog.String("role", role),
	)
	return account, nil
}

// Suspend disables an account without destroying its history. The row
// stays; the auth layer refuses suspended logins.
func (service *Service) Suspend(context context.Context, scope listquery.Scope, id string) error {
	current, err := service.repo.GetAccount(context, scope, id)
	if err != nil {
		return err
	}
	if sec.Role(current.Role) == sec.RoleSuperAdmin {
		return apperr.Forbidden("Superadmin accounts cannot be managed here")
	}

	if err := service.repo.UpdateStatus(context, scope, id, StatusSuspended); err != nil {
		return err
	}

	service.logger.Warn("account_suspended", slog.String("account_id", id))
	return nil
}
