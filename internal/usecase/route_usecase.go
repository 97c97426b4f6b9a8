package usecase

import (
	"context"
	stderrors "errors"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/pkg/errors"
	"github.com/rail-route-service/internal/pkg/utils"
	"github.com/rail-route-service/internal/routing"
	"github.com/rail-route-service/internal/usecase/dto"
)

// DefaultSearchLimit - сколько станций показывать в выпадающем списке
const DefaultSearchLimit = 6

// NetworkProvider отдаёт текущий снапшот сети
type NetworkProvider interface {
	Network() (*routing.Network, error)
}

// RouteUseCase обрабатывает бизнес-логику маршрутов и станций
type RouteUseCase struct {
	networks NetworkProvider
	cfg      routing.Config
	logger   *zap.Logger
}

// NewRouteUseCase создает новый экземпляр RouteUseCase
func NewRouteUseCase(networks NetworkProvider, cfg routing.Config, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		networks: networks,
		cfg:      cfg.WithDefaults(),
		logger:   logger,
	}
}

// FindRoute строит маршрут между двумя станциями.
// Если путь по рельсам не найден, возвращается прямая линия с FallbackReason.
func (uc *RouteUseCase) FindRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if req.FromStationID == req.ToStationID {
		return nil, errors.ErrSameStation
	}

	network, err := uc.networks.Network()
	if err != nil {
		return nil, err
	}

	from, ok := network.Station(req.FromStationID)
	if !ok {
		return nil, errors.ErrStationNotFound.WithDetails(map[string]interface{}{"id": req.FromStationID})
	}
	to, ok := network.Station(req.ToStationID)
	if !ok {
		return nil, errors.ErrStationNotFound.WithDetails(map[string]interface{}{"id": req.ToStationID})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := routing.FindRoute(network.Graph, network.Stations, from, to, uc.cfg)
	if result.StraightLine {
		uc.logger.Warn("Route fell back to straight line",
			zap.String("from", from.ID),
			zap.String("to", to.ID),
			zap.Error(result.FallbackReason))
	} else {
		uc.logger.Debug("Route found",
			zap.String("from", from.ID),
			zap.String("to", to.ID),
			zap.String("status", string(result.Status)),
			zap.Float64("distance_km", result.DistanceKm),
			zap.Int("points", len(result.Path)))
	}

	return toRouteResponse(result), nil
}

// SearchStations ищет станции по подстроке названия без учёта регистра
func (uc *RouteUseCase) SearchStations(ctx context.Context, req dto.StationSearchRequest) (*dto.StationSearchResponse, error) {
	network, err := uc.networks.Network()
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	found := routing.SearchStations(network.Stations, req.Query, req.Exclude, limit)
	return &dto.StationSearchResponse{
		Stations: lo.Map(found, func(s domain.Station, _ int) dto.StationDTO { return toStationDTO(s) }),
		Total:    len(found),
	}, nil
}

// GetStation возвращает станцию по id
func (uc *RouteUseCase) GetStation(ctx context.Context, id string) (*dto.StationDTO, error) {
	network, err := uc.networks.Network()
	if err != nil {
		return nil, err
	}

	st, ok := network.Station(id)
	if !ok {
		return nil, errors.ErrStationNotFound.WithDetails(map[string]interface{}{"id": id})
	}

	out := toStationDTO(st)
	return &out, nil
}

func toStationDTO(s domain.Station) dto.StationDTO {
	return dto.StationDTO{
		ID:       s.ID,
		Name:     s.Name,
		Lat:      s.Location.Lat,
		Lon:      s.Location.Lon,
		Railway:  s.RailType,
		Operator: s.Operator,
	}
}

func toRouteResponse(r *domain.RouteResult) *dto.RouteResponse {
	return &dto.RouteResponse{
		From:            toStationDTO(r.From),
		To:              toStationDTO(r.To),
		Path:            r.Path,
		DistanceKm:      utils.RoundTo(r.DistanceKm, 3),
		DurationMinutes: r.DurationMinutes,
		Status:          r.Status,
		StraightLine:    r.StraightLine,
		FallbackReason:  FallbackCode(r.FallbackReason),
		StationsAlong: lo.Map(r.StationsAlong, func(s domain.StationOnRoute, _ int) dto.StationAlongDTO {
			return dto.StationAlongDTO{
				StationDTO: toStationDTO(s.Station),
				PathIndex:  s.PathIndex,
				DistanceKm: utils.RoundTo(s.DistanceKm, 3),
			}
		}),
	}
}

// FallbackCode переводит ошибку маршрутизации в код API
func FallbackCode(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, routing.ErrEmptyGraph):
		return errors.ErrEmptyGraph.Code
	case stderrors.Is(err, routing.ErrNoNodesNearStation):
		return errors.ErrNoNodesNearStation.Code
	case stderrors.Is(err, routing.ErrNoPathFound):
		return errors.ErrNoPathFound.Code
	default:
		return errors.ErrInternalServer.Code
	}
}
