package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// newTestSessions spins up a miniredis instance and a SessionManager on top
// of it.
func newTestSessions(t *testing.T, ttl time.Duration) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewSessionManager(rdb, ttl), mr
}

func TestSession_CreateAndValidate(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	user := &User{ID: 7, Username: "alice_99", IsAdmin: true}
	token, err := sessions.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("expected 64-char hex token, got %d chars", len(token))
	}

	session, err := sessions.Validate(ctx, token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if session.UserID != 7 || session.Username != "alice_99" || !session.IsAdmin {
		t.Errorf("session round-trip mismatch: %+v", session)
	}
}

func TestSession_ValidateUnknownToken(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)

	_, err := sessions.Validate(context.Background(), "no-such-token")
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 401 {
		t.Fatalf("expected 401 for unknown token, got %v", err)
	}
}

func TestSession_Expiry(t *testing.T) {
	sessions, mr := newTestSessions(t, time.Minute)
	ctx := context.Background()

	token, err := sessions.Create(ctx, &User{ID: 1, Username: "bob_01"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// miniredis expiry is driven manually.
	mr.FastForward(2 * time.Minute)

	_, err = sessions.Validate(ctx, token)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 401 {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}

func TestSession_Destroy(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	token, err := sessions.Create(ctx, &User{ID: 1, Username: "bob_01"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := sessions.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}

	if _, err := sessions.Validate(ctx, token); err == nil {
		t.Error("expected validation to fail after destroy")
	}

	// Destroying a token that no longer exists is not an error.
	if err := sessions.Destroy(ctx, token); err != nil {
		t.Errorf("expected idempotent destroy, got %v", err)
	}
}

func TestSession_TokensAreUnique(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		token, err := sessions.Create(ctx, &User{ID: 1, Username: "bob_01"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[token] {
			t.Fatal("session token collision")
		}
		seen[token] = true
	}
}
