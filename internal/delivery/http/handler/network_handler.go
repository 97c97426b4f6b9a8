package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/pkg/utils"
)

// NetworkHandler обрабатывает запросы статистики и перезагрузки сети
type NetworkHandler struct {
	networks NetworkService
	logger   *zap.Logger
}

// NewNetworkHandler создает новый экземпляр NetworkHandler
func NewNetworkHandler(networks NetworkService, logger *zap.Logger) *NetworkHandler {
	return &NetworkHandler{
		networks: networks,
		logger:   logger,
	}
}

// GetStats godoc
// @Summary Статистика сети
// @Description Статистика загруженного датасета: станции по типам, типы геометрий, диапазон высот, размер графа
// @Tags Network
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.DatasetStats}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/network/stats [get]
func (h *NetworkHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.networks.Stats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// Reload godoc
// @Summary Перезагрузка сети
// @Description Перечитывает датасет из источника в обход кеша и перестраивает граф
// @Tags Network
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ReloadResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/network/reload [post]
func (h *NetworkHandler) Reload(c *fiber.Ctx) error {
	result, err := h.networks.Reload(c.Context())
	if err != nil {
		h.logger.Error("Failed to reload network", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		TimeMSec: result.TookMs,
	})
}
