package geojson_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/repository/geojson"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "railways.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFeatureRepository_LoadFeatures(t *testing.T) {
	path := writeDataset(t, `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"Point","coordinates":[106.85,-6.21]},"properties":{"name":"Manggarai","railway":"station"}},
	  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[106.85,-6.21],[106.84,-6.18]]},"properties":{"railway":"rail"}}
	]}`)

	repo := geojson.NewFeatureRepository(path, zap.NewNop())
	assert.Equal(t, "geojson", repo.Source())

	fc, err := repo.LoadFeatures(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "geojson", fc.Source)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Manggarai", fc.Features[0].Tag("name"))
	assert.Len(t, fc.Features[1].Coordinates, 2)
}

func TestFeatureRepository_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		repo := geojson.NewFeatureRepository(filepath.Join(t.TempDir(), "nope.geojson"), zap.NewNop())
		_, err := repo.LoadFeatures(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		repo := geojson.NewFeatureRepository(writeDataset(t, `{"type":`), zap.NewNop())
		_, err := repo.LoadFeatures(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		repo := geojson.NewFeatureRepository(writeDataset(t, `{}`), zap.NewNop())
		_, err := repo.LoadFeatures(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFeatureRepository_Fingerprint(t *testing.T) {
	java := geojson.NewFeatureRepository("data/java.geojson", zap.NewNop())
	assert.Equal(t, "geojson:data/java.geojson|", java.Fingerprint())
	assert.Equal(t, java.Fingerprint(), geojson.NewFeatureRepository("data/./java.geojson", zap.NewNop()).Fingerprint())
	assert.NotEqual(t, java.Fingerprint(), geojson.NewFeatureRepository("data/sumatra.geojson", zap.NewNop()).Fingerprint())
}
