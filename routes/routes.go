package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/config"
	"github.com/mcikids/portal/handlers"
	"github.com/mcikids/portal/middlewares"
	"github.com/mcikids/portal/models"
	"github.com/mcikids/portal/store"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, st *store.Store, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg)
	std := handlers.NewStudentHandler(st)
	att := handlers.NewAttendanceHandler(st)
	off := handlers.NewOfferingHandler(st)
	feed := handlers.NewFeedHandler(st)
	reg := handlers.NewRegistrationHandler(st)
	files := handlers.NewFileHandler(st)
	set := handlers.NewSettingsHandler(st)
	bak := handlers.NewBackupHandler(st)
	dash := handlers.NewDashboardHandler(st)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	optMW := middlewares.OptionalAuth(cfg.JWTSecret)
	leaderMW := middlewares.RequireRole(models.RoleLeader)

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/leader/login", auth.LeaderLogin)
	e.POST("/auth/helper/login", auth.HelperLogin)
	e.GET("/mural", feed.Mural)
	e.GET("/feed", feed.List, optMW) // guests see public posts only
	e.GET("/files", files.List)
	e.POST("/registrations", reg.Create)

	// ===== Signed-in (leader or helper) =====
	portal := e.Group("", authMW)
	portal.GET("/students", std.List)
	portal.POST("/students", std.Create)
	portal.GET("/attendance", att.List)
	portal.POST("/attendance/mark", att.Mark)
	portal.GET("/offerings", off.List)
	portal.GET("/offerings/totals", off.Totals)
	portal.POST("/offerings", off.Create)
	portal.POST("/feed", feed.Create)
	portal.POST("/feed/:id/react", feed.React)
	portal.POST("/feed/:id/comments", feed.Comment)
	portal.POST("/files", files.Create)

	// ===== Leader only =====
	admin := e.Group("/admin", authMW, leaderMW)
	admin.GET("/dashboard", dash.Summary)
	admin.GET("/settings", set.Get)
	admin.PUT("/settings", set.Update)
	admin.GET("/backup/export", bak.Export)
	admin.POST("/backup/import", bak.Import)

	e.GET("/registrations", reg.List, authMW, leaderMW)
}
