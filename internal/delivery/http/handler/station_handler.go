package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/pkg/utils"
	"github.com/rail-route-service/internal/pkg/validator"
	"github.com/rail-route-service/internal/usecase"
	"github.com/rail-route-service/internal/usecase/dto"
)

// StationHandler - обработчик запросов по станциям
type StationHandler struct {
	routes RouteService
	logger *zap.Logger
}

// NewStationHandler - создание нового StationHandler
func NewStationHandler(routes RouteService, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		routes: routes,
		logger: logger,
	}
}

// Search godoc
// @Summary Поиск станций по названию
// @Description Ищет подключённые к сети станции по подстроке названия без учёта регистра
// @Tags Stations
// @Produce json
// @Param q query string true "Часть названия станции"
// @Param exclude query string false "ID станции, которую не нужно показывать (например, уже выбранная станция отправления)"
// @Param limit query int false "Максимальное количество результатов" default(6)
// @Success 200 {object} utils.SuccessResponse{data=dto.StationSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stations/search [get]
func (h *StationHandler) Search(c *fiber.Ctx) error {
	var req dto.StationSearchRequest
	req.Query = c.Query("q")
	req.Exclude = c.Query("exclude")
	req.Limit = c.QueryInt("limit", usecase.DefaultSearchLimit)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routes.SearchStations(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}

// Get godoc
// @Summary Получение станции по ID
// @Tags Stations
// @Produce json
// @Param id path string true "ID станции"
// @Success 200 {object} utils.SuccessResponse{data=dto.StationDTO}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stations/{id} [get]
func (h *StationHandler) Get(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.routes.GetStation(c.Context(), id)
	if err != nil {
		h.logger.Debug("Station lookup failed", zap.String("id", id), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, station, nil)
}
