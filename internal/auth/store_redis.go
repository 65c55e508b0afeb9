// Copyright (c) 2026 Meridian LMS. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meridianlms/meridian/internal/platform/apperr"
	"github.com/meridianlms/meridian/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis.
//
// Redis expiry IS the session expiry: a key that outlives its TTL simply
// disappears, so there is no revocation table to sweep.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

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
func (repository *RedisSessionRepository) Save(context context.Context, tokenHash, userID string, ttl time.Duration) error {
	if err := repository.client.Set(context, sessionKey(tokenHash), userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_save_failed: %w", err)
	}
	return nil
}

/*
Find resolves the user behind a live session.

Description: Returns apperr.Unauthorized if the session is absent or expired.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - string: UserID
  - error: apperr.Unauthorized or connectivity errors
*/
func (repository *RedisSessionRepository) Find(context context.Context, tokenHash string) (string, error) {
	userID, err := repository.client.Get(context, sessionKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Invalid or expired refresh token")
		}
		return "", fmt.Errorf("redis_session_find_failed: %w", err)
	}
	return userID, nil
}

/*
Delete revokes the session immediately.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
