// Copyright (c) 2026 Meridian LMS. All rights reserved.

package course

import (
	"context"
	"log/slog"
	"time"

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

func (service *Service) ListCourses(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Course, int, error) {
	return service.repo.ListCourses(context, request, scope)
}

func (service *Service) GetCourse(context context.Context, scope listquery.Scope, id string) (*Course, error) {
	return service.repo.GetCourse(context, scope, id)
}

// CreateInput holds the data required to draft a new course.
type CreateInput struct {
	Title        string
	Description  string
	Level        string
	InstructorID string
	PriceCents   int
}

func (service *Service) CreateCourse(context context.Context, tenantID string, input CreateInput) (*Course, error) {
	if input.Level == "" {
		input.Level = LevelBeginner
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		OneOf(FieldLevel, input.Level, LevelBeginner, LevelIntermediate, LevelAdvanced).
		Required(FieldInstructorID, input.InstructorID).
		UUID(FieldInstructorID, input.InstructorID).
		Custom(FieldPriceCents, input.PriceCents < 0, "must not be negative")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	course := &Course{
		ID:           uuidv7.Must(),
		TenantID:     tenantID,
		Title:        input.Title,
		Slug:         slug.From(input.Title),
		Description:  input.Description,
		Status:       StatusDraft,
		Level:        input.Level,
		InstructorID: input.InstructorID,
		PriceCents:   input.PriceCents,
	}

	if err := service.repo.CreateCourse(context, course); err != nil {
		return nil, err
	}

	service.logger.Info("course_created",
		slog.String("course_id", course.ID),
		slog.String("tenant_id", course.TenantID),
	)
	return course, nil
}

// UpdateInput holds the mutable course fields. Nil means "leave unchanged".
type UpdateInput struct {
	Title        *string
	Description  *string
	Status       *string
	Level        *string
	InstructorID *string
	PriceCents   *int
}

func (service *Service) UpdateCourse(context context.Context, scope listquery.Scope, id string, input UpdateInput) (*Course, error) {
	course, err := service.repo.GetCourse(context, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Status != nil {
		course.Status = *input.Status
	}
	if input.Level != nil {
		course.Level = *input.Level
	}
	if input.InstructorID != nil {
		course.InstructorID = *input.InstructorID
	}
	if input.PriceCents != nil {
		course.PriceCents = *input.PriceCents
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, course.Title).
		MaxLen(FieldTitle, course.Title, 200).
		OneOf(FieldStatus, course.Status, StatusDraft, StatusPublished, StatusArchived).
		OneOf(FieldLevel, course.Level, LevelBeginner, LevelIntermediate, LevelAdvanced).
		UUID(FieldInstructorID, course.InstructorID).
		Custom(FieldPriceCents, course.PriceCents < 0, "must not be negative")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// First transition into the published state stamps the publication time.
	if course.Status == StatusPublished && course.PublishedAt == nil {
		now := time.Now()
		course.PublishedAt = &now
	}

	if err := service.repo.UpdateCourse(context, scope, course); err != nil {
		return nil, err
	}

	service.logger.Info("course_updated", slog.String("course_id", course.ID))
	return course, nil
}

func (service *Service) DeleteCourse(context context.Context, scope listquery.Scope, id string) error {
	if err := service.repo.DeleteCourse(context, scope, id); err != nil {
		return err
	}

	service.logger.Warn("course_deleted", slog.String("course_id", id))
	return nil
}
