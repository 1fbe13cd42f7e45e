package admin

import (
	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/auth"
)

// RegisterRoutes sets up the admin routes on the given group. The group is
// expected to already carry RequireAuth; RequireAdmin is added here.
func RegisterRoutes(g *echo.Group, h *Handler) {
	admin := g.Group("/admin", auth.RequireAdmin())
	admin.GET("/users", h.Users)
	admin.GET("/overview", h.Overview)
}
