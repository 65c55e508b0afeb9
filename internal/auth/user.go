// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package auth implements the identity layer of the platform.

It owns the user entity, credential verification, and the session
lifecycle: short-lived RS256 access tokens carrying the caller's tenant,
and opaque refresh tokens stored hashed in Redis with a TTL.

# Architecture

  - Service: Orchestrates login, rotation, and logout.
  - Repository: Abstracted interfaces for Postgres (users) and Redis (sessions).
  - Security: Bcrypt password hashes, SHA-256 hashed refresh tokens.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of a tenant. A nil TenantID marks a
// platform superadmin, the only identity not bound to one tenant.
type User struct {
	ID           string     `json:"id"`
	TenantID     *string    `json:"tenant_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string     `json:"display_name"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// StatusSuspended is the account state that blocks authentication.
const StatusSuspended = "suspended"

// RefreshTokenLength is the byte length of the random secure token.
const RefreshTokenLength = 32

// # Field Identifiers

const (
	FieldLogin       = "login"
	FieldPassword    = "password"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)
