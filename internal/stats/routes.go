package stats

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the statistics query routes on the given group.
// The group is expected to already carry the auth middleware -- dashboards
// are for signed-in users.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/stats/top-categories", h.TopCategories)
	g.GET("/stats/top-websites", h.TopWebsites)
	g.GET("/stats/recent-activity", h.RecentActivity)
}
