package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "")
	t.Setenv("DATASET_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, DatasetSourceGeoJSON, cfg.Dataset.Source)
	assert.Equal(t, "data/railways.geojson", cfg.Dataset.Path)
	assert.Equal(t, 0.09, cfg.Routing.SnapLinkKm)
	assert.Equal(t, 4.0, cfg.Routing.BridgeKm)
	assert.Equal(t, 6.0, cfg.Routing.CandidateRadiusKm)
	assert.Equal(t, 6, cfg.Routing.MaxCandidates)
	assert.Equal(t, 6000.0, cfg.Routing.MaxDistanceKm)
	assert.Equal(t, 5500.0, cfg.Routing.PairSanityKm)
	assert.Equal(t, 60.0, cfg.Routing.SpeedKmh)
	assert.Equal(t, 24*time.Hour, cfg.Cache.NetworkCacheTTL)
	assert.Equal(t, "route-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 20, cfg.Worker.BatchSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "OSMPBF")
	t.Setenv("DATASET_PATH", "/data/spain.osm.pbf")
	t.Setenv("DATASET_RAILWAY_TYPES", "rail, subway ,")
	t.Setenv("ROUTING_SNAP_LINK_KM", "0.12")
	t.Setenv("ROUTING_BRIDGE_KM", "2.5")
	t.Setenv("API_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DatasetSourceOSMPBF, cfg.Dataset.Source)
	assert.Equal(t, "/data/spain.osm.pbf", cfg.Dataset.Path)
	assert.Equal(t, []string{"rail", "subway"}, cfg.Dataset.RailwayTypes)
	assert.Equal(t, 0.12, cfg.Routing.SnapLinkKm)
	assert.Equal(t, 2.5, cfg.Routing.BridgeKm)
	assert.Equal(t, 9090, cfg.Server.Port)

	engine := cfg.RoutingEngine()
	assert.Equal(t, []string{"rail", "subway"}, engine.RailwayTypes)
	assert.Equal(t, 2.5, engine.BridgeKm)
	assert.Equal(t, 0.02, engine.EndpointSnapKm)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		c := &Config{Dataset: DatasetConfig{Source: DatasetSourceGeoJSON, Path: "x.geojson"}}
		c.applyDefaults()
		return c
	}

	t.Run("unknown source", func(t *testing.T) {
		c := base()
		c.Dataset.Source = "csv"
		assert.Error(t, c.Validate())
	})

	t.Run("postgres requires database", func(t *testing.T) {
		c := base()
		c.Dataset.Source = DatasetSourcePostgres
		assert.Error(t, c.Validate())

		c.OSMDB.Host = "localhost"
		c.OSMDB.DBName = "osm"
		assert.NoError(t, c.Validate())
	})

	t.Run("worker requires redis", func(t *testing.T) {
		c := base()
		c.Worker.Enabled = true
		assert.Error(t, c.Validate())

		c.Redis.Enabled = true
		assert.NoError(t, c.Validate())
	})

	t.Run("negative threshold", func(t *testing.T) {
		c := base()
		c.Routing.BridgeKm = -1
		assert.Error(t, c.Validate())
	})
}
