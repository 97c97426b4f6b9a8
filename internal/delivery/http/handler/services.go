package handler

import (
	"context"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/routing"
	"github.com/rail-route-service/internal/usecase/dto"
)

// RouteService - операции над станциями и маршрутами (usecase.RouteUseCase)
type RouteService interface {
	FindRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error)
	SearchStations(ctx context.Context, req dto.StationSearchRequest) (*dto.StationSearchResponse, error)
	GetStation(ctx context.Context, id string) (*dto.StationDTO, error)
}

// NetworkService - жизненный цикл сети (usecase.NetworkUseCase)
type NetworkService interface {
	Network() (*routing.Network, error)
	Stats(ctx context.Context) (*domain.DatasetStats, error)
	Reload(ctx context.Context) (*dto.ReloadResponse, error)
}
