// Copyright (c) 2026 Meridian LMS. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/validate"
)

/*
TestValidator_ChainCollectsAllFailures verifies that the chain keeps going
past a failed rule and reports every failure in one error.
*/
func TestValidator_ChainCollectsAllFailures(t *testing.T) {
	validator := &validate.Validator{}

	err := validator.
		Required("title", "").
		Range("passing_score", 150, 0, 100).
		Email("contact_email", "not-an-email").
		Err()

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)

	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Details, 3)
	assert.Equal(t, "title", appErr.Details[0].Field)
	assert.Equal(t, "passing_score", appErr.Details[1].Field)
	assert.Equal(t, "contact_email", appErr.Details[2].Field)
}

/*
TestValidator_PassingChainReturnsNil verifies the clean path.
*/
func TestValidator_PassingChainReturnsNil(t *testing.T) {
	validator := &validate.Validator{}

	err := validator.
		Required("title", "Intro to Go").
		MaxLen("title", "Intro to Go", 200).
		Range("passing_score", 70, 0, 100).
		Email("contact_email", "admin@acme.test").
		Slug("slug", "intro-to-go").
		OneOf("status", "draft", "draft", "published", "archived").
		Err()

	assert.NoError(t, err)
	assert.False(t, validator.HasErrors())
}

/*
TestValidator_Required verifies whitespace-only values count as empty.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace_only", "   \t", true},
		{"present", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).Required("name", tt.value).Err()
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

/*
TestValidator_LengthRulesCountRunes verifies length rules operate on Unicode
characters rather than bytes.
*/
func TestValidator_LengthRulesCountRunes(t *testing.T) {
	assert.NoError(t, (&validate.Validator{}).MaxLen("title", "héllö", 5).Err())
	assert.Error(t, (&validate.Validator{}).MaxLen("title", "héllö!", 5).Err())
	assert.NoError(t, (&validate.Validator{}).MinLen("title", "héllö", 5).Err())
	assert.Error(t, (&validate.Validator{}).MinLen("title", "héll", 5).Err())
}

/*
TestValidator_Slug verifies the slug format boundary cases.
*/
func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "acme", false},
		{"hyphenated", "intro-to-go-2026", false},
		{"leading_hyphen", "-acme", true},
		{"trailing_hyphen", "acme-", true},
		{"double_hyphen", "acme--corp", true},
		{"uppercase", "Acme", true},
		{"spaces", "acme corp", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).Slug("slug", tt.value).Err()
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

/*
TestValidator_UUID verifies case-insensitive UUID acceptance.
*/
func TestValidator_UUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"lowercase_v7", "0190e1a4-7b1a-7c3d-9e2f-1a2b3c4d5e6f", false},
		{"uppercase", "0190E1A4-7B1A-7C3D-9E2F-1A2B3C4D5E6F", false},
		{"missing_group", "0190e1a4-7b1a-7c3d-9e2f", true},
		{"not_hex", "0190e1a4-7b1a-7c3d-9e2f-1a2b3c4d5ezz", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&validate.Validator{}).UUID("tenant_id", tt.value).Err()
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

/*
TestValidator_OneOf verifies enum membership including the failure message
listing the allowed values.
*/
func TestValidator_OneOf(t *testing.T) {
	err := (&validate.Validator{}).OneOf("status", "deleted", "draft", "published").Err()

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Details, 1)
	assert.Contains(t, appErr.Details[0].Message, "draft, published")
}

/*
TestValidator_Custom verifies arbitrary predicate failures flow through the
same field-error channel.
*/
func TestValidator_Custom(t *testing.T) {
	seats := 0

	err := (&validate.Validator{}).Custom("seats", seats < 1, "Must be at least 1").Err()

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "seats", appErr.Details[0].Field)
}

/*
TestRequiredError verifies the single-field shortcut constructor.
*/
func TestRequiredError(t *testing.T) {
	appErr := validate.RequiredError("refresh_token", "Missing refresh token cookie")

	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "refresh_token", appErr.Details[0].Field)
}
