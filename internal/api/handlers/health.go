package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/phf-auction/player-stats-service/internal/services"
)

// HealthStatus is the health endpoint response shape.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	svc    *services.EnrichmentService
	logger *logrus.Logger
}

func NewHealthHandler(svc *services.EnrichmentService, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{svc: svc, logger: logger}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:    "ok",
		Service:   "player-stats-service",
		Timestamp: time.Now(),
	})
}

// GetReady reports readiness: the service is ready once the first enriched
// snapshot exists.
func (h *HealthHandler) GetReady(c *gin.Context) {
	response := HealthStatus{
		Status:    "ready",
		Service:   "player-stats-service",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	statusCode := http.StatusOK
	if snap, ok := h.svc.Snapshot(); ok {
		response.Checks["dataset"] = "loaded " + snap.LoadedAt.Format(time.RFC3339)
	} else {
		response.Status = "not_ready"
		response.Checks["dataset"] = "no snapshot yet"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
