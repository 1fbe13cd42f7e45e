package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// newTestContext builds an Echo context for a GET request, optionally
// carrying a session cookie.
func newTestContext(token string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	return e.NewContext(req, httptest.NewRecorder())
}

// okHandler records whether the chain reached it.
func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return nil
	}
}

func assertTypedError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError for the central handler, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status %d, got %d", expectedCode, appErr.Code)
	}
}

func TestRequireAuth_NoCookie(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)
	var called bool

	err := RequireAuth(sessions)(okHandler(&called))(newTestContext(""))
	assertTypedError(t, err, 401)
	if called {
		t.Error("handler must not run without a session")
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)
	var called bool

	err := RequireAuth(sessions)(okHandler(&called))(newTestContext("bogus-token"))
	assertTypedError(t, err, 401)
	if called {
		t.Error("handler must not run with an invalid session")
	}
}

func TestRequireAuth_ValidSession(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)
	token, err := sessions.Create(context.Background(), &User{ID: 7, Username: "alice_99"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var called bool
	c := newTestContext(token)
	if err := RequireAuth(sessions)(func(c echo.Context) error {
		called = true
		if GetUserID(c) != 7 {
			t.Errorf("expected user 7 in context, got %d", GetUserID(c))
		}
		if s := GetSession(c); s == nil || s.Username != "alice_99" {
			t.Errorf("expected session in context, got %+v", s)
		}
		return nil
	})(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to run")
	}
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	var called bool
	c := newTestContext("")
	c.Set(contextKeySession, &Session{UserID: 7, Username: "alice_99"})

	err := RequireAdmin()(okHandler(&called))(c)
	assertTypedError(t, err, 403)
	if called {
		t.Error("handler must not run for a non-admin session")
	}
}

func TestRequireAdmin_RejectsMissingSession(t *testing.T) {
	var called bool
	err := RequireAdmin()(okHandler(&called))(newTestContext(""))
	assertTypedError(t, err, 403)
	if called {
		t.Error("handler must not run without a session")
	}
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	var called bool
	c := newTestContext("")
	c.Set(contextKeySession, &Session{UserID: 1, Username: "admin", IsAdmin: true})

	if err := RequireAdmin()(okHandler(&called))(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to run for an admin session")
	}
}
