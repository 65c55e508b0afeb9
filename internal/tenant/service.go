// Copyright (c) 2026 Meridian LMS. All rights reserved.

package tenant

import (
	"context"
	"log/slog"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/internal/platform/validate"
	"github.com/meridianlms/meridian/pkg/listquery"
	"github.com/meridianlms/meridian/pkg/slug"
	"github.com/meridianlms/meridian/pkg/uuidv7"
)

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

// # Scope Resolution

/*
ResolveScope decides the tenant boundary for an authenticated caller.

Description: Implements the tenant-resolution stage contract of the access
pipeline. The rules are deliberately asymmetric:

  - A superadmin without an override operates cross-tenant.
  - A superadmin naming a tenant via the override parameter is pinned to it,
    but only after the directory confirms the tenant exists.
  - Everyone else is pinned to the tenant in their token claims; the
    override parameter is silently ignored for them.
  - A non-superadmin token without a tenant claim cannot be scoped at all.

Parameters:
  - context: context.Context
  - claims: Verified token claims of the caller
  - requestedTenantID: Raw override parameter, "" when absent

Returns:
  - listquery.Scope: Pinned or cross-tenant scope
  - error: Validation, NotFound, or TENANT_MISSING failures
*/
func (service *Service) ResolveScope(context context.Context, claims *sec.AuthClaims, requestedTenantID string) (listquery.Scope, error) {
	if sec.Role(claims.Role) == sec.RoleSuperAdmin {
		if requestedTenantID == "" {
			return listquery.Scope{CrossTenant: true}, nil
		}

		validator := &validate.Validator{}
		validator.UUID(FieldTenantID, requestedTenantID)
		if err := validator.Err(); err != nil {
			return listquery.Scope{}, err
		}

		if _, err := service.repo.GetTenant(context, requestedTenantID); err != nil {
			return listquery.Scope{}, err
		}

		return listquery.Scope{TenantID: requestedTenantID}, nil
	}

	if claims.TenantID != "" {
		return listquery.Scope{TenantID: claims.TenantID}, nil
	}

	return listquery.Scope{}, apperr.TenantMissing()
}

// # Directory CRUD

func (service *Service) ListTenants(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Tenant, int, error) {
	return service.repo.ListTenants(context, request, scope)
}

func (service *Service) GetTenant(context context.Context, id string) (*Tenant, error) {
	return service.repo.GetTenant(context, id)
}

// CreateInput holds the data required to onboard a new tenant.
type CreateInput struct {
	Name         string
	Plan         string
	ContactEmail string
}

func (service *Service) CreateTenant(context context.Context, input CreateInput) (*Tenant, error) {
	if input.Plan == "" {
		input.Plan = PlanStarter
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120).
		OneOf(FieldPlan, input.Plan, PlanStarter, PlanGrowth, PlanEnterprise).
		Required(FieldContactEmail, input.ContactEmail).
		Email(FieldContactEmail, input.ContactEmail)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	tenant := &Tenant{
		ID:           uuidv7.Must(),
		Name:         input.Name,
		Slug:         slug.From(input.Name),
		Plan:         input.Plan,
		Status:       StatusTrial,
		ContactEmail: input.ContactEmail,
	}

	if err := service.repo.CreateTenant(context, tenant); err != nil {
		return nil, err
	}

	service.logger.Info("tenant_created",
		slog.String("tenant_id", tenant.ID),
		slog.String("slug", tenant.Slug),
	)
	return tenant, nil
}

// UpdateInput holds the mutable tenant fields. Nil means "leave unchanged".
type UpdateInput struct {
	Name         *string
	Plan         *string
	Status       *string
	ContactEmail *string
}

func (service *Service) UpdateTenant(context context.Context, id string, input UpdateInput) (*Tenant, error) {
	tenant, err := service.repo.GetTenant(context, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.Plan != nil {
		tenant.Plan = *input.Plan
	}
	if input.Status != nil {
		tenant.Status = *input.Status
	}
	if input.ContactEmail != nil {
		tenant.ContactEmail = *input.ContactEmail
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, tenant.Name).
		MaxLen(FieldName, tenant.Name, 120).
		OneOf(FieldPlan, tenant.Plan, PlanStarter, PlanGrowth, PlanEnterprise).
		OneOf(FieldStatus, tenant.Status, StatusTrial, StatusActive, StatusSuspended).
		Email(FieldContactEmail, tenant.ContactEmail)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateTenant(context, tenant); err != nil {
		return nil, err
	}

	service.logger.Info("tenant_updated", slog.String("tenant_id", tenant.ID))
	return tenant, nil
}

func (service *Service) DeleteTenant(context context.Context, id string) error {
	if err := service.repo.DeleteTenant(context, id); err != nil {
		return err
	}

	service.logger.Warn("tenant_deleted", slog.String("tenant_id", id))
	return nil
}
