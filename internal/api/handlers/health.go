package handlers

import (
	"net/http"
	"time"

	"github.com/coursechat/backend/internal/health"
	"github.com/coursechat/backend/internal/models"
	"github.com/coursechat/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	checker *health.HealthChecker
	logger  *logrus.Logger
}

func NewHealthHandler(checker *health.HealthChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// HandleHealth reports liveness plus per-service status. Cached results
// from the periodic checker are preferred over live probes.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	overall, err := h.checker.CheckCached(c.Request.Context())
	if err != nil {
		live := h.checker.CheckAll()
		overall = &live
	}

	services := make(map[string]string, len(overall.Services))
	for _, s := range overall.Services {
		services[s.Name] = s.Status
	}

	status := http.StatusOK
	if overall.Status == "unhealthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, models.HealthResponse{
		Status:    overall.Status,
		Service:   "coursechat-backend",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    overall.Uptime,
		Services:  services,
	})
}

// HandleReady is a minimal readiness probe for orchestration.
func (h *HealthHandler) HandleReady(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "ready", nil)
}
