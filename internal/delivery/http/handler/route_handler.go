package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/pkg/errors"
	"github.com/rail-route-service/internal/pkg/utils"
	"github.com/rail-route-service/internal/pkg/validator"
	"github.com/rail-route-service/internal/usecase/dto"
)

// RouteHandler - обработчик построения маршрутов
type RouteHandler struct {
	routes RouteService
	logger *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routes RouteService, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routes: routes,
		logger: logger,
	}
}

// FindRoute godoc
// @Summary Маршрут между двумя станциями
// @Description Строит кратчайший путь по железнодорожному графу. Если путь не найден, возвращается прямая линия (straight_line=true) с кодом причины в fallback_reason.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Станции отправления и назначения"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) FindRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routes.FindRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.StationsAlong),
	})
}
