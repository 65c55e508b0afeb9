// Copyright (c) 2026 Meridian LMS. All rights reserved.

package quiz

import (
	"context"
	"log/slog"

	"github.com/meridianlms/meridian/internal/platform/validate"
	"github.com/meridianlms/meridian/pkg/listquery"
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

func (service *Service) ListQuizzes(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Quiz, int, error) {
	return service.repo.ListQuizzes(context, request, scope)
}

func (service *Service) GetQuiz(context context.Context, scope listquery.Scope, id string) (*Quiz, error) {
	return service.repo.GetQuiz(context, scope, id)
}

// CreateInput holds the data required to draft a new quiz.
type CreateInput struct {
	CourseID         string
	Title            string
	QuestionCount    int
	TimeLimitSeconds int
	PassingScore     int
}

func (service *Service) CreateQuiz(context context.Context, tenantID string, input CreateInput) (*Quiz, error) {
	validator := &validate.Validator{}
	validator.Required(FieldCourseID, input.CourseID).
		UUID(FieldCourseID, input.CourseID).
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Range(FieldPassingScore, input.PassingScore, 0, 100)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	quiz := &Quiz{
		ID:               uuidv7.Must(),
		TenantID:         tenantID,
		CourseID:         input.CourseID,
		Title:            input.Title,
		Status:           StatusDraft,
		QuestionCount:    input.QuestionCount,
		TimeLimitSeconds: input.TimeLimitSeconds,
		PassingScore:     input.PassingScore,
	}

	if err := service.repo.CreateQuiz(context, quiz); err != nil {
		return nil, err
	}

	service.logger.Info("quiz_created",
		slog.String("quiz_id", quiz.ID),
		slog.String("course_id", quiz.CourseID),
	)
	return quiz, nil
}

// UpdateInput holds the mutable quiz fields. Nil means "leave unchanged".
type UpdateInput struct {
	Title            *string
	Status           *string
	QuestionCount    *int
	TimeLimitSeconds *int
	PassingScore     *int
}

func (service *Service) UpdateQuiz(context context.Context, scope listquery.Scope, id string, input UpdateInput) (*Quiz, error) {
	quiz, err := service.repo.GetQuiz(context, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		quiz.Title = *input.Title
	}
	if input.Status != nil {
		quiz.Status = *input.Status
	}
	if input.QuestionCount != nil {
		quiz.QuestionCount = *input.QuestionCount
	}
	if input.TimeLimitSeconds != nil {
		quiz.TimeLimitSeconds = *input.TimeLimitSeconds
	}
	if input.PassingScore != nil {
		quiz.PassingScore = *input.PassingScore
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, quiz.Title).
		MaxLen(FieldTitle, quiz.Title, 200).
		OneOf(FieldStatus, quiz.Status, StatusDraft, StatusActive, StatusClosed).
		Range(FieldPassingScore, quiz.PassingScore, 0, 100)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateQuiz(context, scope, quiz); err != nil {
		return nil, err
	}

	service.logger.Info("quiz_updated", slog.String("quiz_id", quiz.ID))
	return quiz, nil
}

func (service *Service) DeleteQuiz(context context.Context, scope listquery.Scope, id string) error {
	if err := service.repo.DeleteQuiz(context, scope, id); err != nil {
		return err
	}

	service.logger.Warn("quiz_deleted", slog.String("quiz_id", id))
	return nil
}
