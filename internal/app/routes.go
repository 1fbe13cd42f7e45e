package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryanwoodall/sitehub/internal/admin"
	"github.com/ryanwoodall/sitehub/internal/auth"
	"github.com/ryanwoodall/sitehub/internal/stats"
	"github.com/ryanwoodall/sitehub/internal/theme"
	"github.com/ryanwoodall/sitehub/internal/website"
)

// RegisterRoutes builds every service and handler and mounts the full API
// under /api. This is the single place where all routes are aggregated.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Health check endpoint for Docker health monitoring.
	e.GET("/healthz", a.healthz)

	// Repositories over the shared DB pool.
	userRepo := auth.NewUserRepository(a.DB)
	settingsRepo := theme.NewSettingsRepository(a.DB)
	websiteRepo := website.NewRepository(a.DB)

	// Services.
	authService := auth.NewAuthService(userRepo)
	themeService := theme.NewService(settingsRepo)
	websiteService := website.NewService(websiteRepo, a.Stats)

	sessions := auth.NewSessionManager(a.Redis, a.Config.Auth.SessionTTL)

	// Handlers.
	authHandler := auth.NewHandler(authService, sessions, a.Stats, !a.Config.IsDevelopment())
	themeHandler := theme.NewHandler(themeService)
	websiteHandler := website.NewHandler(websiteService)
	statsHandler := stats.NewHandler(a.Stats)
	adminHandler := admin.NewHandler(userRepo, a.Stats)

	// Route groups. Everything on authed requires a valid session cookie.
	api := e.Group("/api")
	authed := api.Group("", auth.RequireAuth(sessions))

	auth.RegisterRoutes(api, authHandler, sessions)
	theme.RegisterRoutes(api, authed, themeHandler)
	website.RegisterRoutes(api, authed, websiteHandler)
	stats.RegisterRoutes(authed, statsHandler)
	admin.RegisterRoutes(authed, adminHandler)
}

// healthz reports liveness plus backing store reachability.
func (a *App) healthz(c echo.Context) error {
	ctx := c.Request().Context()

	status := map[string]string{"status": "ok", "database": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := a.DB.PingContext(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := a.Redis.Ping(ctx).Err(); err != nil {
		status["status"] = "degraded"
		status["redis"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, status)
}
