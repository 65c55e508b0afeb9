// Copyright (c) 2026 Meridian LMS. All rights reserved.

package subscription

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
	router.Get("/", handler.listSubscriptions)
	router.Get("/{id}", handler.getSubscription)
}

func (handler *Handler) listSubscriptions(writer http.ResponseWriter, request *http.Request) {
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

	subscriptions, total, err := handler.service.ListSubscriptions(request.Context(), listRequest, scope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "subscriptions", subscriptions, pagination.NewMeta(listRequest.Page, listRequest.Limit, total))
}

func (handler *Handler) getSubscription(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	subscription, err := handler.service.GetSubscription(request.Context(), scope, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, subscription)
}
