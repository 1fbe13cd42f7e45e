package theme

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the theme routes on the given group. Reading
// themes is public (the login window is themed too); changing the
// selection happens on an authed group wired by the caller.
func RegisterRoutes(public, authed *echo.Group, h *Handler) {
	public.GET("/themes", h.List)
	public.GET("/themes/current", h.Current)
	authed.PUT("/themes/current", h.Set)
}
