// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/ctxutil"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/internal/platform/validate"
	"github.com/meridianlms/meridian/pkg/listquery"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Claims extracts the authenticated caller claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetIdentity(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the caller claims.

Returns:
  - *sec.AuthClaims: The authenticated caller claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetIdentity(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredUserID returns the User ID of the currently logged-in user.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}

	return claims.UserID, nil
}

/*
ParseList normalizes the request's query string against a resource's list
spec.

A malformed date bound is surfaced as a VALIDATION_ERROR (HTTP 400) carrying
the offending parameter name; every other malformed input degrades to
defaults inside the parser.
*/
func ParseList(request *http.Request, spec listquery.Spec) (listquery.Request, error) {
	listRequest, err := listquery.Parse(request.URL.Query(), spec)
	if err != nil {
		var badParam *listquery.BadParamError
		if errors.As(err, &badParam) {
			return listquery.Request{}, apperr.ValidationError("Invalid filter value", apperr.FieldError{
				Field:   badParam.Param,
				Message: "Must be an RFC 3339 timestamp or a YYYY-MM-DD date",
			})
		}
		return listquery.Request{}, err
	}

	return listRequest, nil
}
