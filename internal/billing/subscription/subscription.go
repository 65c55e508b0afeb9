// Copyright (c) 2026 Meridian LMS. All rights reserved.

// Package subscription exposes the billing state of a tenant. It records
// what a tenant is subscribed to; charging happens in an external system
// that writes these rows.
package subscription

import (
	"time"

	"github.com/meridianlms/meridian/pkg/listquery"
)

// Subscription represents one billing record of a tenant.
type Subscription struct {
	ID                 string    `json:"id"`
	TenantID           string    `json:"tenant_id"`
	Plan               string    `json:"plan"`
	Status             string    `json:"status"`
	Seats              int       `json:"seats"`
	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Billing states.
const (
	StatusTrialing = "trialing"
	StatusActive   = "active"
	StatusPastDue  = "past_due"
	StatusCanceled = "canceled"
)

// ListSpec is the queryable surface of the subscriptions list endpoint.
// Subscriptions carry no free-text columns, so the search parameter is a
// declared no-op here.
var ListSpec = listquery.Spec{
	Fields: listquery.FieldMap{
		"plan":               "plan",
		"status":             "status",
		"created_at":         "created_at",
		"current_period_end": "current_period_end",
	},
	Searchable:  nil,
	DateFields:  []string{"created_at", "current_period_end"},
	DefaultSort: listquery.Sort{Column: "current_period_end", Order: listquery.OrderAsc},
}
