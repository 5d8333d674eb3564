package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/seoforge/contentiq/internal/config"
	"github.com/seoforge/contentiq/internal/dedup"
	"github.com/seoforge/contentiq/internal/enrich"
	"github.com/seoforge/contentiq/internal/keywords"
	"github.com/seoforge/contentiq/internal/logger"
	"github.com/seoforge/contentiq/internal/middleware"
	"github.com/seoforge/contentiq/internal/models"
	"github.com/seoforge/contentiq/internal/quality"
	"github.com/seoforge/contentiq/internal/storage"
)

type Handlers struct {
	config   *config.Config
	scorer   *quality.Scorer
	gate     *dedup.Gate
	store    dedup.Store
	archive  storage.Archive
	enricher *enrich.Client
}

func NewHandlers(cfg *config.Config, store dedup.Store, archive storage.Archive) (*Handlers, error) {
	scorer, err := quality.NewScorer(cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scorer: %w", err)
	}

	return &Handlers{
		config:   cfg,
		scorer:   scorer,
		gate:     dedup.NewGateWithThresholds(store, cfg.CampaignSimilarityThreshold, cfg.GlobalSimilarityThreshold),
		store:    store,
		archive:  archive,
		enricher: enrich.NewClient(cfg.EnrichBaseURL, cfg.EnrichAPIKey, cfg.EnrichTimeout),
	}, nil
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// ScoreRequest is the payload for POST /api/v1/score.
type ScoreRequest struct {
	HTML        string                `json:"html" validate:"required"`
	Topic       string                `json:"topic"`
	Author      *models.AuthorProfile `json:"author"`
	SiteDAScore *float64              `json:"site_da_score"`
	IsYMYL      bool                  `json:"is_ymyl"`
	Weights     *quality.Weights      `json:"weights"`
	Archive     bool                  `json:"archive"`
}

// Score handles POST /api/v1/score
func (h *Handlers) Score(c *fiber.Ctx) error {
	var req ScoreRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}

	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	opts := quality.Options{
		Author:      req.Author,
		SiteDAScore: req.SiteDAScore,
		IsYMYL:      req.IsYMYL,
		Weights:     req.Weights,
	}

	// Enrichment is best-effort; missing signals keep the configured
	// placeholder values.
	if h.enricher != nil && req.Topic != "" {
		signals := h.enricher.FetchSignals(c.Context(), req.Topic)
		opts.FactCheckScore = signals.FactCheckScore
		opts.BacklinksQuality = signals.BacklinksQuality
		opts.TechnicalAccuracy = signals.TechnicalAccuracy
	}

	score := h.scorer.Calculate(req.HTML, opts)

	report := &models.ScoreReport{
		ID:        uuid.NewString(),
		Topic:     req.Topic,
		Score:     score,
		CreatedAt: score.CheckedAt,
	}

	if req.Archive {
		if err := h.archive.SaveReport(c.Context(), report); err != nil {
			logger.Get().Error().Err(err).Str("report_id", report.ID).Msg("Error archiving report")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to archive report",
			})
		}
	}

	return c.JSON(report)
}

// QuickCheckRequest is the payload for POST /api/v1/score/quick.
type QuickCheckRequest struct {
	HTML string `json:"html" validate:"required"`
}

// QuickCheck handles POST /api/v1/score/quick
func (h *Handlers) QuickCheck(c *fiber.Ctx) error {
	var req QuickCheckRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}
	return c.JSON(h.scorer.QuickCheck(req.HTML))
}

// ClusterRequest is the payload for POST /api/v1/keywords/cluster.
type ClusterRequest struct {
	Keywords      []models.Keyword `json:"keywords" validate:"required,min=1,dive"`
	MinSimilarity float64          `json:"min_similarity"`
	MaxClusters   int              `json:"max_clusters"`
}

// ClusterKeywords handles POST /api/v1/keywords/cluster
func (h *Handlers) ClusterKeywords(c *fiber.Ctx) error {
	var req ClusterRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}

	clusters := keywords.Cluster(req.Keywords, keywords.ClusterOptions{
		MinSimilarity: req.MinSimilarity,
		MaxClusters:   req.MaxClusters,
	})

	return c.JSON(fiber.Map{
		"clusters": clusters,
		"summary":  keywords.Summary(clusters),
	})
}

// DedupCheckRequest is the payload for POST /api/v1/dedup/check.
type DedupCheckRequest struct {
	Topic       string `json:"topic" validate:"required"`
	CampaignID  string `json:"campaign_id"`
	SiteID      string `json:"site_id"`
	CheckGlobal bool   `json:"check_global"`
}

// DedupCheck handles POST /api/v1/dedup/check
func (h *Handlers) DedupCheck(c *fiber.Ctx) error {
	var req DedupCheckRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}

	decision, err := h.gate.ShouldSkipTopic(c.Context(), req.Topic, req.CampaignID, req.SiteID, req.CheckGlobal)
	if err != nil {
		logger.Get().Error().Err(err).Str("topic", req.Topic).Msg("Error checking topic")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check topic",
		})
	}

	return c.JSON(decision)
}

// AddRecordRequest is the payload for POST /api/v1/admin/records.
type AddRecordRequest struct {
	Topic           string `json:"topic" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Slug            string `json:"slug"`
	CampaignID      string `json:"campaign_id"`
	SiteID          string `json:"site_id"`
	PublishedPostID string `json:"published_post_id"`
}

// AddRecord handles POST /api/v1/admin/records
func (h *Handlers) AddRecord(c *fiber.Ctx) error {
	var req AddRecordRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}

	record := dedup.NewRecord(req.Topic, req.Title, req.Slug, req.CampaignID, req.SiteID, req.PublishedPostID)
	if err := h.gate.Add(c.Context(), record); err != nil {
		logger.Get().Error().Err(err).Str("topic", req.Topic).Msg("Error adding record")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// PurgeRecordsRequest is the payload for DELETE /api/v1/admin/records.
// Exactly one of campaign_id or older_than_days must be set.
type PurgeRecordsRequest struct {
	CampaignID    string `json:"campaign_id"`
	OlderThanDays int    `json:"older_than_days" validate:"gte=0"`
}

// PurgeRecords handles DELETE /api/v1/admin/records
func (h *Handlers) PurgeRecords(c *fiber.Ctx) error {
	var req PurgeRecordsRequest
	if !middleware.ParseAndValidate(c, &req) {
		return nil
	}

	var purged int
	var err error
	switch {
	case req.CampaignID != "":
		purged, err = h.store.PurgeCampaign(c.Context(), req.CampaignID)
	case req.OlderThanDays > 0:
		purged, err = h.store.PurgeOlderThan(c.Context(), time.Duration(req.OlderThanDays)*24*time.Hour)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Either campaign_id or older_than_days is required",
		})
	}
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error purging records")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to purge records",
		})
	}

	return c.JSON(fiber.Map{
		"status": "purged",
		"count":  purged,
	})
}

// ListReports handles GET /api/v1/reports
func (h *Handlers) ListReports(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 20
	}

	reports, err := h.archive.ListReports(c.Context(), page, pageSize)
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error listing reports")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list reports",
		})
	}

	return c.JSON(fiber.Map{
		"page":      page,
		"page_size": pageSize,
		"total":     len(reports),
		"items":     reports,
	})
}

// GetReport handles GET /api/v1/reports/:id
func (h *Handlers) GetReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Report ID is required",
		})
	}

	report, err := h.archive.GetReport(c.Context(), id)
	if err != nil {
		logger.Get().Error().Err(err).Str("id", id).Msg("Error getting report")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	}

	return c.JSON(report)
}

// DeleteReport handles DELETE /api/v1/admin/reports/:id
func (h *Handlers) DeleteReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Report ID is required",
		})
	}

	if err := h.archive.DeleteReport(c.Context(), id); err != nil {
		logger.Get().Error().Err(err).Str("id", id).Msg("Error deleting report")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete report",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "deleted",
		"message": "Report deleted successfully",
	})
}
