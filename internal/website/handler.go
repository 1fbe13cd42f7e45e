package website

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/apperror"
	"github.com/ryanwoodall/sitehub/internal/auth"
)

// Handler serves the catalog and personal-list endpoints.
type Handler struct {
	service Service
}

// NewHandler creates a new website handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Catalog returns the curated catalog (GET /api/websites). The category
// query parameter restricts the result to one category.
func (h *Handler) Catalog(c echo.Context) error {
	sites, err := h.service.Catalog(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sites)
}

// Categories returns the catalog categories (GET /api/websites/categories).
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Search finds catalog entries (GET /api/websites/search?q=...). The
// search is attributed to the signed-in user when there is one.
func (h *Handler) Search(c echo.Context) error {
	var username string
	if session := auth.GetSession(c); session != nil {
		username = session.Username
	}

	sites, err := h.service.Search(c.Request().Context(), c.QueryParam("q"), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sites)
}

// Visit records a website visit (POST /api/websites/visit).
func (h *Handler) Visit(c echo.Context) error {
	var input VisitInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	if err := h.service.Visit(c.Request().Context(), input); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Personal lists (require auth) ---

// UserList returns the caller's personal list (GET /api/my/websites).
func (h *Handler) UserList(c echo.Context) error {
	sites, err := h.service.UserList(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sites)
}

// Add stores a new personal list entry (POST /api/my/websites).
func (h *Handler) Add(c echo.Context) error {
	var input AddWebsiteInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	site, err := h.service.AddToUserList(c.Request().Context(), auth.GetUserID(c), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, site)
}

// Remove deletes a personal list entry (DELETE /api/my/websites/:id).
func (h *Handler) Remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperror.NewBadRequest("invalid website id")
	}

	if err := h.service.RemoveFromUserList(c.Request().Context(), auth.GetUserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
