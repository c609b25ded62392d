// Package handler provides HTTP handlers for all API endpoints. Handlers
// validate input, call the orchestration service, and translate its
// results into the response envelope — no extraction logic lives here.
package handler

import (
	"net/http"
	"time"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
	"github.com/tommhe14/tmkt-api/internal/config"
	"github.com/tommhe14/tmkt-api/internal/store"
	"github.com/tommhe14/tmkt-api/internal/tm"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	svc       *tm.Service
	countries *store.Countries
	cfg       *config.Config
}

// New creates a Handler with shared dependencies.
func New(svc *tm.Service, countries *store.Countries, cfg *config.Config) *Handler {
	return &Handler{
		svc:       svc,
		countries: countries,
		cfg:       cfg,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Transfermarkt API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs/",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"status_code": http.StatusOK,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns per-family cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.svc.CacheStats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
