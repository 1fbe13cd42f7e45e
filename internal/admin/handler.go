// Package admin serves the read-only administrative overview: the user
// roster and the usage statistics roll-up. Every route requires an admin
// session.
package admin

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/apperror"
	"github.com/ryanwoodall/sitehub/internal/auth"
	"github.com/ryanwoodall/sitehub/internal/stats"
)

// defaultPageSize bounds the user roster page when the client doesn't ask.
const defaultPageSize = 25

// Handler serves the admin endpoints.
type Handler struct {
	users auth.UserRepository
	agg   *stats.Aggregator
}

// NewHandler creates a new admin handler.
func NewHandler(users auth.UserRepository, agg *stats.Aggregator) *Handler {
	return &Handler{users: users, agg: agg}
}

// Users returns a page of the user roster (GET /api/admin/users).
func (h *Handler) Users(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size < 1 || size > 100 {
		size = defaultPageSize
	}

	users, total, err := h.users.ListUsers(c.Request().Context(), (page-1)*size, size)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("listing users: %w", err))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"users": users,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// Overview returns the statistics roll-up plus the user count
// (GET /api/admin/overview).
func (h *Handler) Overview(c echo.Context) error {
	userCount, err := h.users.CountUsers(c.Request().Context())
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("counting users: %w", err))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"stats":           h.agg.Overview(),
		"registered":      userCount,
		"top_categories":  h.agg.TopCategories(5),
		"top_websites":    h.agg.TopWebsites(10),
		"recent_activity": h.agg.RecentActivity(7),
	})
}
