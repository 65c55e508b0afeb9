// Copyright (c) 2026 Meridian LMS. All rights reserved.

package account

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAccounts)
	router.Post("/", handler.createAccount)
	router.Patch("/{id}/role", handler.changeRole)
	router.Delete("/{id}", handler.suspendAccount)
}

func (handler *Handler) listAccounts(writer http.ResponseWriter, request *http.Request) {
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

	accounts, total, err := handler.service.ListAccounts(request.Context(), listRequest, scope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "accounts", accounts, pagination.NewMeta(listRequest.Page, listRequest.Limit, total))
}

type createAccountRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (handler *Handler) createAccount(writer http.ResponseWriter, request *http.Request) {
	tenantID, err := guard.PinnedTenant(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createAccountRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.CreateAccount(request.Context(), tenantID, CreateInput{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Role:        input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, account)
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (handler *Handler) changeRole(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changeRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.ChangeRole(request.Context(), scope, requestutil.ID(request, "id"), input.Role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) suspendAccount(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Suspend(request.Context(), scope, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
