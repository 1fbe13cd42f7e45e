package stats

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler serves the statistics query endpoints consumed by the client's
// dashboard panels.
type Handler struct {
	agg *Aggregator
}

// NewHandler creates a new stats handler.
func NewHandler(agg *Aggregator) *Handler {
	return &Handler{agg: agg}
}

// TopCategories returns the most-visited categories (GET /api/stats/top-categories).
func (h *Handler) TopCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.agg.TopCategories(queryLimit(c, 5)))
}

// TopWebsites returns the most-clicked websites (GET /api/stats/top-websites).
func (h *Handler) TopWebsites(c echo.Context) error {
	return c.JSON(http.StatusOK, h.agg.TopWebsites(queryLimit(c, 10)))
}

// RecentActivity returns per-day visit counts for the trailing window
// (GET /api/stats/recent-activity).
func (h *Handler) RecentActivity(c echo.Context) error {
	days := queryInt(c, "days", 7)
	if days < 1 {
		days = 1
	}
	if days > 90 {
		days = 90
	}
	return c.JSON(http.StatusOK, h.agg.RecentActivity(days))
}

// queryLimit reads the limit query parameter with bounds [1, 100].
func queryLimit(c echo.Context, def int) int {
	limit := queryInt(c, "limit", def)
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

// queryInt reads an integer query parameter, falling back on def.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
