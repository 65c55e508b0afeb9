// Copyright (c) 2026 Meridian LMS. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/constants"
	"github.com/meridianlms/meridian/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account.
	//   - role: The role of the account.
	//   - tenantID: The owning tenant, "" for platform superadmins.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, username, role, tenantID string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to credential checks
// or token rotation must be reviewed before merging.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, sessionRepo SessionRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Can be Username or Email
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

// # Authentication Flow

/*
Login validates user credentials and issues security tokens.

Description: Verifies identity, performs constant-time password comparison,
rejects suspended accounts, and establishes a fresh refresh session.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	// Generic message on every failure path to prevent account enumeration.
	user, err := service.userRepository.FindByLogin(context, input.Login)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if user.Status == StatusSuspended {
		return nil, apperr.Unauthorized("Account is suspended")
	}

	session, err := service.issueSession(context, user)
	if err != nil {
		return nil, err
	}

	_ = service.userRepository.TouchLastLogin(context, user.ID)

	return session, nil
}

/*
Logout permanently revokes the caller's refresh session.

Description: Idempotent; an already-expired token is a successful logout.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - err: Revocation failures
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessionRepository.Delete(context, sec.HashToken(refreshToken))
}

// # Session Management

/*
RefreshSession implements the Refresh Token Rotation mechanism.

Description: Verifies the existing refresh token, revokes it to prevent
reuse, and issues a fresh pair of rotated tokens.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *LoginSession: New session credentials
  - err: Unauthorized or storage failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	userID, err := service.sessionRepository.Find(context, tokenHash)
	if err != nil {
		return nil, err
	}

	// Rotation: the old token dies before the new one is born, so a
	// replayed token can never mint a second session.
	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found or suspended")
	}

	if user.Status == StatusSuspended {
		return nil, apperr.Unauthorized("Account is suspended")
	}

	return service.issueSession(context, user)
}

/*
Me returns the profile of the authenticated caller.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *User: Hydrated profile
  - err: Retrieval failures
*/
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(context, userID)
}

// issueSession mints an access token plus a tracked refresh token for the user.
func (service *Service) issueSession(context context.Context, user *User) (*LoginSession, error) {
	tenantID := ""
	if user.TenantID != nil {
		tenantID = *user.TenantID
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(
		user.ID, user.Username, user.Role, tenantID, constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.sessionRepository.Save(context, sec.HashToken(refreshToken), user.ID, constants.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}
