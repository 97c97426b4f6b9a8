package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rail-route-service/internal/domain"
)

// MockFeatureRepository is a mock of FeatureRepository
type MockFeatureRepository struct {
	mock.Mock
}

func (m *MockFeatureRepository) LoadFeatures(ctx context.Context) (*domain.FeatureCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeatureCollection), args.Error(1)
}

func (m *MockFeatureRepository) Source() string {
	return m.Called().String(0)
}

func (m *MockFeatureRepository) Fingerprint() string {
	return m.Called().String(0)
}

// MockSnapshotRepository is a mock of SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Get(ctx context.Context, fingerprint string) (*domain.FeatureCollection, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeatureCollection), args.Error(1)
}

func (m *MockSnapshotRepository) Save(ctx context.Context, fingerprint string, collection *domain.FeatureCollection) error {
	return m.Called(ctx, fingerprint, collection).Error(0)
}

func (m *MockSnapshotRepository) Invalidate(ctx context.Context, fingerprint string) error {
	return m.Called(ctx, fingerprint).Error(0)
}

// meridian returns n points running north from (lat0, lon) over lengthKm.
func meridian(lat0, lon, lengthKm float64, n int) []domain.Point {
	const kmPerDegree = 6371.0 * 3.141592653589793 / 180
	pts := make([]domain.Point, n)
	for i := range pts {
		pts[i] = domain.Point{Lat: lat0 + lengthKm/kmPerDegree*float64(i)/float64(n-1), Lon: lon}
	}
	return pts
}

func station(id, name, railway string, p domain.Point) domain.Feature {
	return domain.Feature{
		ID:          id,
		Geometry:    domain.GeometryPoint,
		Coordinates: []domain.Point{p},
		Properties:  map[string]string{"name": name, "railway": railway},
	}
}

func track(id string, coords []domain.Point) domain.Feature {
	return domain.Feature{
		ID:          id,
		Geometry:    domain.GeometryLineString,
		Coordinates: coords,
		Properties:  map[string]string{"railway": "rail"},
	}
}

// fixtureCollection: main line with Alpha, Charlie and Bravo; an isolated
// line ~55 km east with Echo; Remote lies far from any track.
func fixtureCollection(source string) *domain.FeatureCollection {
	main := meridian(-6.3, 106.8, 5, 51)
	east := meridian(-6.3, 107.3, 5, 51)
	return &domain.FeatureCollection{
		Source: source,
		Features: []domain.Feature{
			track("way/1", main),
			track("way/2", east),
			station("node/1", "Alpha", "station", main[0]),
			station("node/2", "Bravo", "station", main[20]),
			station("node/3", "Charlie", "halt", domain.Point{Lat: main[10].Lat, Lon: main[10].Lon + 0.002}),
			station("node/4", "Remote", "station", domain.Point{Lat: -7.5, Lon: 110.4}),
			station("node/5", "Echo", "station", east[5]),
		},
	}
}
