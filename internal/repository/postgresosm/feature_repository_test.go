package postgresosm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/routing"
)

func TestFeatureRepository_Fingerprint(t *testing.T) {
	db := &DB{addr: "osm-db:5432/osm"}

	repo := NewFeatureRepository(db, []string{"tram", "rail"})
	assert.Equal(t, "postgres:osm-db:5432/osm|rail,tram", repo.Fingerprint())

	other := NewFeatureRepository(&DB{addr: "osm-db:5432/osm_staging"}, []string{"rail", "tram"})
	assert.NotEqual(t, repo.Fingerprint(), other.Fingerprint())
}

func TestFeatureRepository_LoadFeatures(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := setupTestDB(t)
	defer teardownTestDB(t, db)
	skipIfNoOSMData(t, db)

	repo := NewFeatureRepository(db, routing.DefaultRailwayTypes)
	assert.Equal(t, SourceName, repo.Source())

	fc, err := repo.LoadFeatures(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceName, fc.Source)

	for _, f := range fc.Features {
		switch f.Geometry {
		case domain.GeometryPoint:
			assertNotEmpty(t, f.Tag("name"), "station name")
			assertValidCoordinates(t, f.Coordinates[0].Lat, f.Coordinates[0].Lon)
		case domain.GeometryLineString:
			assertNotEmpty(t, f.Tag("railway"), "railway tag")
			assert.GreaterOrEqual(t, len(f.Coordinates), 2)
		default:
			t.Fatalf("unexpected geometry %s", f.Geometry)
		}
	}
}
