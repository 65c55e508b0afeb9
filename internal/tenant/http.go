// Copyright (c) 2026 Meridian LMS. All rights reserved.

package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianlms/meridian/internal/platform/guard"
	requestutil "github.com/meridianlms/meridian/internal/platform/request"
	"github.com/meridianlms/meridian/internal/platform/respond"
	"github.com/meridianlms/meridian/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the directory endpoints. The caller mounts these
// behind a superadmin-only pipeline; nothing here re-checks roles.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTenants)
	router.Post("/", handler.createTenant)
	router.Get("/{id}", handler.getTenant)
	router.Patch("/{id}", handler.updateTenant)
	router.Delete("/{id}", handler.deleteTenant)
}

func (handler *Handler) listTenants(writer http.ResponseWriter, request *http.Request) {
	listRequest, err := requestutil.ParseList(request, ListSpec)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tenants, total, err := handler.service.ListTenants(request.Context(), listRequest, scope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "tenants", tenants, pagination.NewMeta(listRequest.Page, listRequest.Limit, total))
}

func (handler *Handler) getTenant(writer http.ResponseWriter, request *http.Request) {
	tenant, err := handler.service.GetTenant(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tenant)
}

type createTenantRequest struct {
	Name         string `json:"name"`
	Plan         string `json:"plan"`
	ContactEmail string `json:"contact_email"`
}

func (handler *Handler) createTenant(writer http.ResponseWriter, request *http.Request) {
	var input createTenantRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tenant, err := handler.service.CreateTenant(request.Context(), CreateInput{
		Name:         input.Name,
		Plan:         input.Plan,
		ContactEmail: input.ContactEmail,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tenant)
}

type updateTenantRequest struct {
	Name         *string `json:"name"`
	Plan         *string `json:"plan"`
	Status       *string `json:"status"`
	ContactEmail *string `json:"contact_email"`
}

func (handler *Handler) updateTenant(writer http.ResponseWriter, request *http.Request) {
	var input updateTenantRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tenant, err := handler.service.UpdateTenant(request.Context(), requestutil.ID(request, "id"), UpdateInput{
		Name:         input.Name,
		Plan:         input.Plan,
		Status:       input.Status,
		ContactEmail: input.ContactEmail,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tenant)
}

func (handler *Handler) deleteTenant(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteTenant(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
