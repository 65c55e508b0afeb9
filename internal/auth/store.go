// Copyright (c) 2026 Meridian LMS. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for identity lookups.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByLogin returns the account whose email or username matches.

		Parameters:
		  - context: context.Context
		  - login: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	/*
		TouchLastLogin stamps the account's last successful authentication.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	TouchLastLogin(context context.Context, id string) error
}

// # Session Data Access

// SessionRepository defines the contract for refresh-token sessions. Keys
// are SHA-256 hashes of the opaque token; the raw token is never stored.
type SessionRepository interface {

	/*
		Save stores a session under the token hash with an expiry.

		Parameters:
		  - context: context.Context
		  - tokenHash: string
		  - userID: string
		  - ttl: time.Duration

		Returns:
		  - error: Storage failures
	*/
	Save(context context.Context, tokenHash, userID string, ttl time.Duration) error

	/*
		Find resolves the user behind a live session.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - string: UserID
		  - error: apperr.Unauthorized when absent or expired
	*/
	Find(context context.Context, tokenHash string) (string, error)

	/*
		Delete revokes the session immediately.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - error: Deletion failures
	*/
	Delete(context context.Context, tokenHash string) error
}
