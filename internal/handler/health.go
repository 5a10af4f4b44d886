package handler

import (
	"context"
	"time"

	"mood-cinema/internal/domain"
	"mood-cinema/internal/dto"
	"mood-cinema/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BreakerReporter exposes the state of an upstream circuit breaker.
type BreakerReporter interface {
	State() string
}

// HealthHandler reports whether the server and its session store are reachable
type HealthHandler struct {
	cache   domain.Cache    // nil when no session store is configured
	catalog BreakerReporter // optional; reported but never fails the check
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cache domain.Cache, catalog BreakerReporter) *HealthHandler {
	return &HealthHandler{cache: cache, catalog: catalog}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	details := map[string]string{"redis": "disabled"}
	if h.catalog != nil {
		details["tmdb"] = h.catalog.State()
	}
	if h.cache == nil {
		return c.JSON(dto.HealthResponse{Status: "ok", Details: details})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: redis ping failed", zap.Error(err))
		details["redis"] = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Details: details})
	}

	details["redis"] = "ok"
	return c.JSON(dto.HealthResponse{Status: "ok", Details: details})
}
