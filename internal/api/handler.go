// Package api exposes the validation engine over HTTP.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/veridoc-io/veridoc/internal/ensemble"
	"github.com/veridoc-io/veridoc/internal/export"
)

// Handler provides HTTP endpoints for document validation.
type Handler struct {
	engine *ensemble.Engine
	logger *logrus.Logger
}

// NewHandler creates a new validation handler.
func NewHandler(engine *ensemble.Engine, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes registers all validation routes.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/v1")
	{
		v1.POST("/validate", h.Validate)
		v1.GET("/tiers", h.Tiers)
		v1.GET("/cost", h.Cost)
	}
	router.GET("/healthz", h.Health)
}

// PageRequest describes one rendered page in a validation request.
type PageRequest struct {
	Number int    `json:"number" binding:"required"`
	Path   string `json:"path,omitempty"`
	Data   []byte `json:"data,omitempty"`
}

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Pages    []PageRequest     `json:"pages" binding:"required"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Tier     string            `json:"tier,omitempty"`
}

// Validate runs the specialist ensemble and returns the scorecard.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc := ensemble.Document{Metadata: req.Metadata}
	for _, p := range req.Pages {
		doc.Pages = append(doc.Pages, ensemble.PageImage{Number: p.Number, Path: p.Path, Data: p.Data})
	}

	report := h.engine.Validate(c.Request.Context(), doc, req.Tier)

	h.logger.WithFields(logrus.Fields{
		"run":   report.RunID,
		"tier":  report.Tier,
		"score": report.OverallScore,
		"grade": report.Verdict.Grade,
	}).Info("validation run complete")

	c.JSON(http.StatusOK, export.BuildScorecard(report))
}

// TierResponse describes one validation tier.
type TierResponse struct {
	Name        string   `json:"name"`
	Specialists []string `json:"specialists"`
	CostPerPage float64  `json:"costPerPage"`
}

// Tiers lists the available validation tiers.
func (h *Handler) Tiers(c *gin.Context) {
	var out []TierResponse
	for _, tier := range ensemble.AllTiers {
		kinds := ensemble.ResolveTier(tier)
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, k.String())
		}
		out = append(out, TierResponse{
			Name:        tier.String(),
			Specialists: names,
			CostPerPage: ensemble.EstimateCost(kinds, 1, false).Total,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tiers": out})
}

// Cost prices a validation run from query parameters without executing it.
func (h *Handler) Cost(c *gin.Context) {
	pages, err := strconv.Atoi(c.DefaultQuery("pages", "0"))
	if err != nil || pages < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pages must be a non-negative integer"})
		return
	}
	enrichment := c.Query("enrichment") == "true"

	tier, _ := ensemble.ParseTier(c.DefaultQuery("tier", "balanced"))
	est := ensemble.EstimateCost(ensemble.ResolveTier(tier), pages, enrichment)

	c.JSON(http.StatusOK, gin.H{
		"tier":     tier.String(),
		"pages":    pages,
		"total":    est.Total,
		"perPage":  est.PerPage,
		"currency": est.Currency,
	})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
