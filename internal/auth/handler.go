package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// sessionCookieName is the HTTP cookie used to store the session token.
const sessionCookieName = "sitehub_session"

// UsageRecorder receives login and session-duration events for usage
// statistics. Satisfied by stats.Aggregator.
type UsageRecorder interface {
	RecordLogin(username string)
	AddSessionMinutes(minutes int)
}

// Handler handles HTTP requests for authentication (register, login,
// logout, current user). Handlers are thin: they bind the request, call
// the service, and render the response. No business logic lives here.
type Handler struct {
	service  AuthService
	sessions *SessionManager
	stats    UsageRecorder
	secure   bool
}

// NewHandler creates a new auth handler. secure controls the Secure flag
// on the session cookie and should be true whenever the server is reached
// over HTTPS.
func NewHandler(service AuthService, sessions *SessionManager, stats UsageRecorder, secure bool) *Handler {
	return &Handler{service: service, sessions: sessions, stats: stats, secure: secure}
}

// Register processes a registration request (POST /api/auth/register).
func (h *Handler) Register(c echo.Context) error {
	var input RegisterInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	user, err := h.service.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Registration complete. You can now sign in with your new account.",
		"user":    user,
	})
}

// Login processes a login request (POST /api/auth/login). On success it
// creates a session, sets the session cookie, and records the login event.
func (h *Handler) Login(c echo.Context) error {
	var input LoginInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	user, err := h.service.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), user)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("creating session: %w", err))
	}
	h.setSessionCookie(c, token)

	if h.stats != nil {
		h.stats.RecordLogin(user.Username)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Welcome back, %s!", user.Username),
		"user":    user,
	})
}

// Logout destroys the current session (POST /api/auth/logout). The session
// age is credited to the usage totals before it is destroyed.
func (h *Handler) Logout(c echo.Context) error {
	if token := getSessionToken(c); token != "" {
		if session, err := h.sessions.Validate(c.Request().Context(), token); err == nil && h.stats != nil {
			h.stats.AddSessionMinutes(int(time.Since(session.CreatedAt).Minutes()))
		}
		// A session that is already gone still counts as logged out.
		_ = h.sessions.Destroy(c.Request().Context(), token)
	}
	clearSessionCookie(c)

	return c.JSON(http.StatusOK, map[string]string{"message": "Signed out."})
}

// Me returns the session's user summary (GET /api/auth/me). Requires auth.
func (h *Handler) Me(c echo.Context) error {
	session := GetSession(c)
	if session == nil {
		return apperror.NewUnauthorized("authentication required")
	}
	return c.JSON(http.StatusOK, session)
}

// --- Cookie helpers ---

// setSessionCookie writes the session token cookie. HttpOnly keeps it away
// from script; SameSite=Lax still sends it on top-level navigations.
func (h *Handler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// getSessionToken reads the session token from the request cookie.
func getSessionToken(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
