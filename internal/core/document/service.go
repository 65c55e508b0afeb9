// Copyright (c) 2026 Meridian LMS. All rights reserved.

package document

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

func (service *Service) ListDocuments(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Document, int, error) {
	return service.repo.ListDocuments(context, request, scope)
}

func (service *Service) GetDocument(context context.Context, scope listquery.Scope, id string) (*Document, error) {
	return service.repo.GetDocument(context, scope, id)
}

// CreateInput holds the data required to register a new material record.
type CreateInput struct {
	CourseID  string
	Title     string
	Kind      string
	SizeBytes int64
}

func (service *Service) CreateDocument(context context.Context, tenantID string, input CreateInput) (*Document, error) {
	validator := &validate.Validator{}
	validator.Required(FieldCourseID, input.CourseID).
		UUID(FieldCourseID, input.CourseID).
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		OneOf(FieldKind, input.Kind, KindPDF, KindVideo, KindSlides, KindArchive)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	document := &Document{
		ID:        uuidv7.Must(),
		TenantID:  tenantID,
		CourseID:  input.CourseID,
		Title:     input.Title,
		Kind:      input.Kind,
		Status:    StatusProcessing,
		SizeBytes: input.SizeBytes,
	}

	if err := service.repo.CreateDocument(context, document); err != nil {
		return nil, err
	}

	service.logger.Info("document_created",
		slog.String("document_id", document.ID),
		slog.String("course_id", document.CourseID),
	)
	return document, nil
}

// UpdateInput holds the mutable document fields. Nil means "leave unchanged".
type UpdateInput struct {
	Title     *string
	Kind      *string
	Status    *string
	SizeBytes *int64
}

func (service *Service) UpdateDocument(context context.Context, scope listquery.Scope, id string, input UpdateInput) (*Document, error) {
	document, err := service.repo.GetDocument(context, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		document.Title = *input.Title
	}
	if input.Kind != nil {
		document.Kind = *input.Kind
	}
	if input.Status != nil {
		document.Status = *input.Status
	}
	if input.SizeBytes != nil {
		document.SizeBytes = *input.SizeBytes
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, document.Title).
		MaxLen(FieldTitle, document.Title, 200).
		OneOf(FieldKind, document.Kind, KindPDF, KindVideo, KindSlides, KindArchive).
		OneOf(FieldStatus, document.Status, StatusProcessing, StatusReady, StatusFailed)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateDocument(context, scope, document); err != nil {
		return nil, err
	}

	service.logger.Info("document_updated", slog.String("document_id", document.ID))
	return document, nil
}

func (service *Service) DeleteDocument(context context.Context, scope listquery.Scope, id string) error {
	if err := service.repo.DeleteDocument(context, scope, id); err != nil {
		return err
	}

	service.logger.Warn("document_deleted", slog.String("document_id", id))
	return nil
}
