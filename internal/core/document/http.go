// Copyright (c) 2026 Meridian LMS. All rights reserved.

package document

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
	router.Get("/", handler.listDocuments)
	router.Post("/", handler.createDocument)
	router.Get("/{id}", handler.getDocument)
	router.Patch("/{id}", handler.updateDocument)
	router.Delete("/{id}", handler.deleteDocument)
}

func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request) {
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

	documents, total, err := handler.service.ListDocuments(request.Context(), listRequest, scope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "documents", documents, pagination.NewMeta(listRequest.Page, listRequest.Limit, total))
}

func (handler *Handler) getDocument(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.GetDocument(request.Context(), scope, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

type createDocumentRequest struct {
	CourseID  string `json:"course_id"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
	SizeBytes int64  `json:"size_bytes"`
}

func (handler *Handler) createDocument(writer http.ResponseWriter, request *http.Request) {
	tenantID, err := guard.PinnedTenant(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createDocumentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.CreateDocument(request.Context(), tenantID, CreateInput{
		CourseID:  input.CourseID,
		Title:     input.Title,
		Kind:      input.Kind,
		SizeBytes: input.SizeBytes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, document)
}

type updateDocumentRequest struct {
	Title     *string `json:"title"`
	Kind      *string `json:"kind"`
	Status    *string `json:"status"`
	SizeBytes *int64  `json:"size_bytes"`
}

func (handler *Handler) updateDocument(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateDocumentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.UpdateDocument(request.Context(), scope, requestutil.ID(request, "id"), UpdateInput{
		Title:     input.Title,
		Kind:      input.Kind,
		Status:    input.Status,
		SizeBytes: input.SizeBytes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) deleteDocument(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDocument(request.Context(), scope, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
