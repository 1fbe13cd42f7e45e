package theme

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// Handler serves the theme endpoints.
type Handler struct {
	service Service
}

// NewHandler creates a new theme handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List returns every palette plus the active selection (GET /api/themes).
func (h *Handler) List(c echo.Context) error {
	current, err := h.service.Current(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"themes":  h.service.List(c.Request().Context()),
		"current": current.ID,
	})
}

// Current returns the active palette (GET /api/themes/current).
func (h *Handler) Current(c echo.Context) error {
	current, err := h.service.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, current)
}

// Set activates a theme (PUT /api/themes/current).
func (h *Handler) Set(c echo.Context) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	palette, err := h.service.Set(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, palette)
}
