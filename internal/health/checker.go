package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coursechat/backend/internal/database"
	"github.com/sirupsen/logrus"
)

// HealthChecker manages health checks for all backing services
type HealthChecker struct {
	dbManager *database.Manager
	cache     *database.Cache
	logger    *logrus.Logger
	aiBaseURL string
}

func NewHealthChecker(dbManager *database.Manager, logger *logrus.Logger, aiBaseURL string) *HealthChecker {
	return &HealthChecker{
		dbManager: dbManager,
		cache:     database.NewCache(dbManager.Redis, logger),
		logger:    logger,
		aiBaseURL: aiBaseURL,
	}
}

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// OverallHealth represents the overall system health
type OverallHealth struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
	Uptime   string          `json:"uptime"`
}

// CheckPostgreSQL checks PostgreSQL database health
func (h *HealthChecker) CheckPostgreSQL() ServiceHealth {
	start := time.Now()
	err := h.dbManager.PingDatabase()
	responseTime := int(time.Since(start).Milliseconds())

	status := "healthy"
	errorMsg := ""
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
		h.logger.WithError(err).Error("PostgreSQL health check failed")
	}

	return ServiceHealth{
		Name:         "postgresql",
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckRedis checks Redis cache health
func (h *HealthChecker) CheckRedis() ServiceHealth {
	start := time.Now()
	err := h.dbManager.PingRedis()
	responseTime := int(time.Since(start).Milliseconds())

	status := "healthy"
	errorMsg := ""
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
		h.logger.WithError(err).Error("Redis health check failed")
	}

	return ServiceHealth{
		Name:         "redis",
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckAIProvider checks the generative AI endpoint. The chat pipeline
// degrades gracefully without it, so a failure here is "degraded", not
// "unhealthy".
func (h *HealthChecker) CheckAIProvider() ServiceHealth {
	start := time.Now()

	status := "healthy"
	errorMsg := ""

	if h.aiBaseURL == "" {
		status = "degraded"
		errorMsg = "AI provider not configured"
	} else {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Get(h.aiBaseURL + "/models")
		responseTime := int(time.Since(start).Milliseconds())

		if err != nil {
			status = "degraded"
			errorMsg = err.Error()
		} else {
			defer resp.Body.Close()
			if resp.StatusCode >= 500 {
				status = "degraded"
				errorMsg = fmt.Sprintf("HTTP %d", resp.StatusCode)
			}
		}

		if status != "healthy" {
			h.logger.WithField("error", errorMsg).Warn("AI provider health check failed")
		}

		return ServiceHealth{
			Name:         "ai_provider",
			Status:       status,
			ResponseTime: responseTime,
			Error:        errorMsg,
			LastChecked:  time.Now().Format(time.RFC3339),
		}
	}

	return ServiceHealth{
		Name:         "ai_provider",
		Status:       status,
		ResponseTime: int(time.Since(start).Milliseconds()),
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckAll performs health checks on all services
func (h *HealthChecker) CheckAll() OverallHealth {
	services := []ServiceHealth{
		h.CheckPostgreSQL(),
		h.CheckRedis(),
		h.CheckAIProvider(),
	}

	overallStatus := "healthy"
	for _, service := range services {
		if service.Status == "unhealthy" {
			overallStatus = "unhealthy"
			break
		}
		if service.Status == "degraded" && overallStatus == "healthy" {
			overallStatus = "degraded"
		}
	}

	return OverallHealth{
		Status:   overallStatus,
		Services: services,
		Uptime:   h.getUptime(),
	}
}

// CheckCached returns cached health status if available
func (h *HealthChecker) CheckCached(ctx context.Context) (*OverallHealth, error) {
	var cached OverallHealth
	if err := h.cache.GetCachedSystemHealth(ctx, &cached); err != nil {
		return nil, err
	}
	cached.Uptime = h.getUptime()
	return &cached, nil
}

var startTime = time.Now()

func (h *HealthChecker) getUptime() string {
	uptime := time.Since(startTime)
	return uptime.String()
}

// PeriodicHealthCheck runs health checks periodically
func (h *HealthChecker) PeriodicHealthCheck(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			health := h.CheckAll()

			cacheCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := h.cache.CacheSystemHealth(cacheCtx, health, 2*interval); err != nil {
				h.logger.WithError(err).Error("Failed to cache health status")
			}
			cancel()

			h.logger.WithField("status", health.Status).Debug("Periodic health check completed")
		}
	}
}
