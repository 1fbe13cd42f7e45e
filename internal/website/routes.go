package website

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the website routes. Catalog browsing is public
// (the directory is shown on the landing screen, before login); search,
// visit recording, and personal lists live on the authed group so events
// are attributed to the signed-in user.
func RegisterRoutes(public, authed *echo.Group, h *Handler) {
	public.GET("/websites", h.Catalog)
	public.GET("/websites/categories", h.Categories)

	authed.GET("/websites/search", h.Search)
	authed.POST("/websites/visit", h.Visit)
	authed.GET("/my/websites", h.UserList)
	authed.POST("/my/websites", h.Add)
	authed.DELETE("/my/websites/:id", h.Remove)
}
