// Copyright (c) 2026 Meridian LMS. All rights reserved.

package course

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
	router.Get("/", handler.listCourses)
	router.Post("/", handler.createCourse)
	router.Get("/{id}", handler.getCourse)
	router.Patch("/{id}", handler.updateCourse)
	router.Delete("/{id}", handler.deleteCourse)
}

/*
listCourses serves the guarded course listing.

GET /api/v1/courses

Description: Parses the query string against the course Field Map, applies
the resolved tenant scope, and returns one page plus pagination metadata.

Response:
  - 200: {"courses": [...], "pagination": {...}}
  - 400: ErrValidation: Malformed date bound
  - 403: TENANT_MISSING: No resolvable tenant scope
*/
func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
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

	courses, total, err := handler.service.ListCourses(request.Context(), listRequest, scope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "courses", courses, pagination.NewMeta(listRequest.Page, listRequest.Limit, total))
}

func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.GetCourse(request.Context(), scope, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

type createCourseRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Level        string `json:"level"`
	InstructorID string `json:"instructor_id"`
	PriceCents   int    `json:"price_cents"`
}

func (handler *Handler) createCourse(writer http.ResponseWriter, request *http.Request) {
	tenantID, err := guard.PinnedTenant(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.CreateCourse(request.Context(), tenantID, CreateInput{
		Title:        input.Title,
		Description:  input.Description,
		Level:        input.Level,
		InstructorID: input.InstructorID,
		PriceCents:   input.PriceCents,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, course)
}

type updateCourseRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	Level        *string `json:"level"`
	InstructorID *string `json:"instructor_id"`
	PriceCents   *int    `json:"price_cents"`
}

func (handler *Handler) updateCourse(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.UpdateCourse(request.Context(), scope, requestutil.ID(request, "id"), UpdateInput{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Level:        input.Level,
		InstructorID: input.InstructorID,
		PriceCents:   input.PriceCents,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

func (handler *Handler) deleteCourse(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCourse(request.Context(), scope, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
