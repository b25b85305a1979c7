package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/body-comp-api/bodycomp"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	store    assessmentStore
	reports  reportWriter
	polarity bodycomp.PolarityTable
	log      *zap.Logger

	now   func() time.Time // overridable for tests
	newID func() string
}

func newHandler(store assessmentStore, reports reportWriter, log *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		reports:  reports,
		polarity: bodycomp.DefaultPolarity,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
	}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// Neon closes idle connections after ~5 minutes.
func getDBPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from Neon's server-side prepared statement cache after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/assessments/preview", h.previewAssessment)

	subjects := api.Group("/subjects/:subjectID")
	subjects.POST("/assessments", h.createAssessment)
	subjects.GET("/assessments", h.listAssessments)
	subjects.GET("/assessments/export", h.exportAssessments)
	subjects.GET("/assessments/:id", h.getAssessment)
	subjects.GET("/trend", h.getTrend)
	subjects.GET("/chart", h.getChart)
	subjects.POST("/reports", h.generateReports)
}
