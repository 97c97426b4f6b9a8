package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/routing"
	"github.com/rail-route-service/internal/usecase/dto"
)

// MockRouteService is a mock of RouteService
type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) FindRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RouteResponse), args.Error(1)
}

func (m *MockRouteService) SearchStations(ctx context.Context, req dto.StationSearchRequest) (*dto.StationSearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StationSearchResponse), args.Error(1)
}

func (m *MockRouteService) GetStation(ctx context.Context, id string) (*dto.StationDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StationDTO), args.Error(1)
}

// MockNetworkService is a mock of NetworkService
type MockNetworkService struct {
	mock.Mock
}

func (m *MockNetworkService) Network() (*routing.Network, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*routing.Network), args.Error(1)
}

func (m *MockNetworkService) Stats(ctx context.Context) (*domain.DatasetStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetStats), args.Error(1)
}

func (m *MockNetworkService) Reload(ctx context.Context) (*dto.ReloadResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReloadResponse), args.Error(1)
}
