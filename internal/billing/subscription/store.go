// Copyright (c) 2026 Meridian LMS. All rights reserved.

package subscription

import (
	"context"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Repository is read-only; billing rows are written by the payment
// processor integration, never by this API.
type Repository interface {
	ListSubscriptions(context context.Context, request listquery.Request, scope listquery.Scope) ([]*Subscription, int, error)
	GetSubscription(context context.Context, scope listquery.Scope, id string) (*Subscription, error)
}
