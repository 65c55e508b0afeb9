// Copyright (c) 2026 Meridian LMS. All rights reserved.

package quiz

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
	router.Get("/", handler.listQuizzes)
	router.Post("/", handler.createQuiz)
	router.Get("/{id}", handler.getQuiz)
	router.Patch("/{id}", handler.updateQuiz)
	router.Delete("/{id}", handler.deleteQuiz)
}

func (handler *Handler) listQuizzes(writer http.ResponseWriter, request *http.Request) {
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

	quizzes, total, err := handler.service.ListQuizzes(request.Context(), listRequest, scope)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "quizzes", quizzes, pagination.NewMeta(listRequest.Page, listRequest.Limit, total))
}

func (handler *Handler) getQuiz(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	quiz, err := handler.service.GetQuiz(request.Context(), scope, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, quiz)
}

type createQuizRequest struct {
	CourseID         string `json:"course_id"`
	Title            string `json:"title"`
	QuestionCount    int    `json:"question_count"`
	TimeLimitSeconds int    `json:"time_limit_seconds"`
	PassingScore     int    `json:"passing_score"`
}

func (handler *Handler) createQuiz(writer http.ResponseWriter, request *http.Request) {
	tenantID, err := guard.PinnedTenant(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createQuizRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	quiz, err := handler.service.CreateQuiz(request.Context(), tenantID, CreateInput{
		CourseID:         input.CourseID,
		Title:            input.Title,
		QuestionCount:    input.QuestionCount,
		TimeLimitSeconds: input.TimeLimitSeconds,
		PassingScore:     input.PassingScore,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, quiz)
}

type updateQuizRequest struct {
	Title            *string `json:"title"`
	Status           *string `json:"status"`
	QuestionCount    *int    `json:"question_count"`
	TimeLimitSeconds *int    `json:"time_limit_seconds"`
	PassingScore     *int    `json:"passing_score"`
}

func (handler *Handler) updateQuiz(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateQuizRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	quiz, err := handler.service.UpdateQuiz(request.Context(), scope, requestutil.ID(request, "id"), UpdateInput{
		Title:            input.Title,
		Status:           input.Status,
		QuestionCount:    input.QuestionCount,
		TimeLimitSeconds: input.TimeLimitSeconds,
		PassingScore:     input.PassingScore,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, quiz)
}

func (handler *Handler) deleteQuiz(writer http.ResponseWriter, request *http.Request) {
	scope, err := guard.TenantScope(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteQuiz(request.Context(), scope, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
