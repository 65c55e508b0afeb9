// Copyright (c) 2026 Meridian LMS. All rights reserved.

package subscription

import (
	"context"
	"log/slog"

	"github.com/meridianlms/meridian/pkg/listquery"
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

func (service *Service) ListSubscriptions(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Subscription, int, error) {
	return service.repo.ListSubscriptions(context, request, scope)
}

func (service *Service) GetSubscription(context context.Context, scope listquery.Scope, id string) (*Subscription, error) {
	return service.repo.GetSubscription(context, scope, id)
}
