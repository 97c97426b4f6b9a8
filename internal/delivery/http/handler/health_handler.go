package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rail-route-service/internal/usecase/dto"
)

const cacheCheckTimeout = time.Second

// HealthChecker - зависимость с health-check (Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	networks NetworkService
	cache    HealthChecker
}

// NewHealthHandler создает новый экземпляр HealthHandler. cache может быть nil, если Redis выключен.
func NewHealthHandler(networks NetworkService, cache HealthChecker) *HealthHandler {
	return &HealthHandler{networks: networks, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса. Пока сеть не загружена, возвращается 503. Недоступный кеш не делает сервис нездоровым.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "loading"}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), cacheCheckTimeout)
		defer cancel()

		resp.Cache = "ok"
		if err := h.cache.Health(ctx); err != nil {
			resp.Cache = "unavailable"
		}
	}

	network, err := h.networks.Network()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}

	resp.Status = "healthy"
	resp.NetworkLoaded = true
	resp.Source = network.Source
	resp.Stations = len(network.Stations)
	return c.JSON(resp)
}
