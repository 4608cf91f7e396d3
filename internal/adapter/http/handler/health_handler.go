package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tweetsense/sentiment-api/internal/domain/service"
)

var errModelNotLoaded = errors.New("model not loaded")

// checkTimeout bounds each dependency check
const checkTimeout = 5 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	model service.HealthChecker
	redis *redis.Client
}

// NewHealthHandler creates a new health handler. redis may be nil when
// publishing is disabled.
func NewHealthHandler(model service.HealthChecker, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		model: model,
		redis: redis,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check model endpoint
	if err := h.checkModel(ctx); err != nil {
		components["classifier"] = "error: " + err.Error()
		healthy = false
	} else {
		components["classifier"] = "ok"
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := h.checkModel(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *HealthHandler) checkModel(ctx context.Context) error {
	if h.model == nil {
		return errModelNotLoaded
	}
	return h.model.Ready(ctx)
}
