package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seoforge/contentiq/internal/config"
	"github.com/seoforge/contentiq/internal/middleware"
)

// SetupRoutes registers all API routes.
func SetupRoutes(app *fiber.App, h *Handlers, cfg *config.Config) {
	v1 := app.Group("/api/v1")

	v1.Get("/health", h.HealthCheck)

	v1.Post("/score", h.Score)
	v1.Post("/score/quick", h.QuickCheck)
	v1.Post("/keywords/cluster", h.ClusterKeywords)
	v1.Post("/dedup/check", h.DedupCheck)

	v1.Get("/reports", h.ListReports)
	v1.Get("/reports/:id", h.GetReport)

	admin := v1.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	admin.Post("/records", h.AddRecord)
	admin.Delete("/records", h.PurgeRecords)
	admin.Delete("/reports/:id", h.DeleteReport)
}
