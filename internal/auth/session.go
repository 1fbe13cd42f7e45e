package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// sessionKeyPrefix is the Redis key prefix for session data.
const sessionKeyPrefix = "session:"

// sessionTokenBytes is the number of random bytes in a session token.
// 32 bytes = 256 bits of entropy, hex-encoded to 64 characters.
const sessionTokenBytes = 32

// SessionManager owns authenticated sessions for the HTTP layer. The core
// Login contract ends at the returned *User; holding on to "who is logged
// in" between requests is the delivery layer's job, and this is where it
// lives.
type SessionManager struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSessionManager creates a session manager storing sessions in Redis
// with the given TTL.
func NewSessionManager(rdb *redis.Client, ttl time.Duration) *SessionManager {
	return &SessionManager{redis: rdb, ttl: ttl}
}

// Create generates a random session token, stores the session data in
// Redis with the configured TTL, and returns the token.
func (m *SessionManager) Create(ctx context.Context, user *User) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	session := Session{
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("marshaling session: %w", err)
	}

	key := sessionKeyPrefix + token
	if err := m.redis.Set(ctx, key, data, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("storing session in redis: %w", err)
	}

	return token, nil
}

// Validate looks up a session token in Redis and returns the session data
// if it exists and hasn't expired.
func (m *SessionManager) Validate(ctx context.Context, token string) (*Session, error) {
	key := sessionKeyPrefix + token

	data, err := m.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, apperror.NewUnauthorized("session expired or invalid")
	}
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("reading session from redis: %w", err))
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("unmarshaling session: %w", err))
	}

	return &session, nil
}

// Destroy removes a session from Redis, effectively logging the user out.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token

	if err := m.redis.Del(ctx, key).Err(); err != nil {
		return apperror.NewInternal(fmt.Errorf("deleting session from redis: %w", err))
	}

	return nil
}

// generateSessionToken creates a cryptographically random hex-encoded token.
func generateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
