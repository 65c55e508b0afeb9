// Copyright (c) 2026 Meridian LMS. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianlms/meridian/internal/auth"
	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/sec"
)

// memoryUserRepository holds users keyed by both id and login.
type memoryUserRepository struct {
	users       map[string]*auth.User
	lastLoginID string
}

func newMemoryUserRepository(users ...*auth.User) *memoryUserRepository {
	repo := &memoryUserRepository{users: make(map[string]*auth.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return u, nil
}

func (r *memoryUserRepository) FindByLogin(_ context.Context, login string) (*auth.User, error) {
	for _, u := range r.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) TouchLastLogin(_ context.Context, id string) error {
	r.lastLoginID = id
	return nil
}

// memorySessionRepository is a hash-to-userID map standing in for Redis.
type memorySessionRepository struct {
	sessions map[string]string
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[string]string)}
}

func (r *memorySessionRepository) Save(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	r.sessions[tokenHash] = userID
	return nil
}

func (r *memorySessionRepository) Find(_ context.Context, tokenHash string) (string, error) {
	userID, ok := r.sessions[tokenHash]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}
	return userID, nil
}

func (r *memorySessionRepository) Delete(_ context.Context, tokenHash string) error {
	delete(r.sessions, tokenHash)
	return nil
}

// staticTokenProvider mints predictable access tokens.
type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(userID, _, _, _ string, _ time.Duration) (string, error) {
	return "access-for-" + userID, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func activeUser(t *testing.T) *auth.User {
	tenantID := "tenant-1"
	return &auth.User{
		ID:           "user-1",
		TenantID:     &tenantID,
		Username:     "casey",
		Email:        "casey@acme.test",
		PasswordHash: mustHash(t, "correct horse"),
		Role:         string(sec.RoleInstructor),
		Status:       "active",
	}
}

func newTestService(users *memoryUserRepository, sessions *memorySessionRepository) *auth.Service {
	return auth.NewService(users, sessions, staticTokenProvider{})
}

/*
TestLogin verifies a successful login issues both tokens and records the
login time.
*/
func TestLogin(t *testing.T) {
	users := newMemoryUserRepository(activeUser(t))
	sessions := newMemorySessionRepository()
	service := newTestService(users, sessions)

	session, err := service.Login(context.Background(), auth.LoginInput{Login: "casey", Password: "correct horse"})
	require.NoError(t, err)

	assert.Equal(t, "access-for-user-1", session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, "user-1", session.User.ID)
	assert.Equal(t, "user-1", users.lastLoginID)

	// The stored session is keyed by the token hash, never the raw token.
	_, rawStored := sessions.sessions[session.RefreshToken]
	assert.False(t, rawStored)
	assert.Equal(t, "user-1", sessions.sessions[sec.HashToken(session.RefreshToken)])
}

/*
TestLogin_EmailAsLogin verifies the login field accepts the email address.
*/
func TestLogin_EmailAsLogin(t *testing.T) {
	service := newTestService(newMemoryUserRepository(activeUser(t)), newMemorySessionRepository())

	session, err := service.Login(context.Background(), auth.LoginInput{Login: "casey@acme.test", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.User.ID)
}

/*
TestLogin_Rejections verifies unknown accounts and wrong passwords produce
the same generic message, and suspended accounts are refused.
*/
func TestLogin_Rejections(t *testing.T) {
	suspended := activeUser(t)
	suspended.ID = "user-2"
	suspended.Username = "drew"
	suspended.Email = "drew@acme.test"
	suspended.Status = auth.StatusSuspended

	users := newMemoryUserRepository(activeUser(t), suspended)

	tests := []struct {
		name        string
		input       auth.LoginInput
		wantMessage string
	}{
		{"unknown_account", auth.LoginInput{Login: "nobody", Password: "x"}, "Invalid login credentials"},
		{"wrong_password", auth.LoginInput{Login: "casey", Password: "incorrect horse"}, "Invalid login credentials"},
		{"suspended_account", auth.LoginInput{Login: "drew", Password: "correct horse"}, "Account is suspended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newMemorySessionRepository()
			service := newTestService(users, sessions)

			_, err := service.Login(context.Background(), tt.input)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "UNAUTHORIZED", appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)
			assert.Empty(t, sessions.sessions, "no session may survive a failed login")
		})
	}
}

/*
TestRefreshSession_Rotation verifies the old refresh token is revoked before
a new one is minted, so a replay can never succeed.
*/
func TestRefreshSession_Rotation(t *testing.T) {
	users := newMemoryUserRepository(activeUser(t))
	sessions := newMemorySessionRepository()
	service := newTestService(users, sessions)

	session, err := service.Login(context.Background(), auth.LoginInput{Login: "casey", Password: "correct horse"})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// Replaying the consumed token must fail.
	_, err = service.RefreshSession(context.Background(), session.RefreshToken)
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	// The rotated token still works.
	_, err = service.RefreshSession(context.Background(), rotated.RefreshToken)
	assert.NoError(t, err)
}

/*
TestRefreshSession_SuspendedUser verifies suspension takes effect on the
next refresh even though the access token may still be live.
*/
func TestRefreshSession_SuspendedUser(t *testing.T) {
	user := activeUser(t)
	users := newMemoryUserRepository(user)
	sessions := newMemorySessionRepository()
	service := newTestService(users, sessions)

	session, err := service.Login(context.Background(), auth.LoginInput{Login: "casey", Password: "correct horse"})
	require.NoError(t, err)

	user.Status = auth.StatusSuspended

	_, err = service.RefreshSession(context.Background(), session.RefreshToken)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	assert.Empty(t, sessions.sessions, "the consumed session must not be restored")
}

/*
TestLogout verifies revocation and its idempotence.
*/
func TestLogout(t *testing.T) {
	users := newMemoryUserRepository(activeUser(t))
	sessions := newMemorySessionRepository()
	service := newTestService(users, sessions)

	session, err := service.Login(context.Background(), auth.LoginInput{Login: "casey", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, sessions.sessions)

	// Logging out twice is fine.
	assert.NoError(t, service.Logout(context.Background(), session.RefreshToken))
}
