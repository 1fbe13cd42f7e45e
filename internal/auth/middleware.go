package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// Context keys for storing session data in Echo context. Other packages
// read the authenticated user through the exported getters below.
const (
	contextKeySession = "auth_session"
	contextKeyUserID  = "auth_user_id"
)

// RequireAuth returns middleware that validates the session cookie and
// injects session data into the request context. Requests without a valid
// session get a 401 JSON response.
func RequireAuth(sessions *SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := getSessionToken(c)
			if token == "" {
				return unauthenticated(c)
			}

			session, err := sessions.Validate(c.Request().Context(), token)
			if err != nil {
				// Invalid or expired session -- clear the stale cookie.
				clearSessionCookie(c)
				return unauthenticated(c)
			}

			// Store session data in context for downstream handlers.
			c.Set(contextKeySession, session)
			c.Set(contextKeyUserID, session.UserID)

			return next(c)
		}
	}
}

// RequireAdmin returns middleware that rejects non-admin sessions with 403.
// Must be applied after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := GetSession(c)
			if session == nil || !session.IsAdmin {
				return apperror.NewForbidden("administrator access required")
			}
			return next(c)
		}
	}
}

// unauthenticated is the error for requests with no valid session. Returned
// to the central error handler rather than written directly.
func unauthenticated(c echo.Context) error {
	return apperror.NewUnauthorized("authentication required")
}

// --- Exported getters for other packages ---

// GetSession retrieves the authenticated session from the Echo context.
// Returns nil if the request is not authenticated (middleware not applied).
func GetSession(c echo.Context) *Session {
	session, ok := c.Get(contextKeySession).(*Session)
	if !ok {
		return nil
	}
	return session
}

// GetUserID retrieves the authenticated user's ID from the Echo context.
// Returns zero if the request is not authenticated.
func GetUserID(c echo.Context) int64 {
	id, ok := c.Get(contextKeyUserID).(int64)
	if !ok {
		return 0
	}
	return id
}
