package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/middleware"
)

// RegisterRoutes sets up all auth routes on the given group. Register and
// login are public; the POST endpoints are rate-limited to slow down
// brute-force and credential stuffing: 10 attempts per IP per minute for
// login, 5 for register.
func RegisterRoutes(g *echo.Group, h *Handler, sessions *SessionManager) {
	g.POST("/auth/register", h.Register, middleware.RateLimit(5, time.Minute))
	g.POST("/auth/login", h.Login, middleware.RateLimit(10, time.Minute))
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/me", h.Me, RequireAuth(sessions))
}
