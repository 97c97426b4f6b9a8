// Package dataset выбирает источник станций и путей по DATASET_SOURCE.
package dataset

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rail-route-service/internal/config"
	"github.com/rail-route-service/internal/domain/repository"
	"github.com/rail-route-service/internal/repository/geojson"
	"github.com/rail-route-service/internal/repository/osmpbf"
	"github.com/rail-route-service/internal/repository/postgresosm"
)

// Open создаёт FeatureRepository для настроенного источника.
// closeFn освобождает ресурсы источника (соединение с БД) и никогда не равен nil.
func Open(cfg *config.Config, logger *zap.Logger) (repo repository.FeatureRepository, closeFn func() error, err error) {
	noop := func() error { return nil }
	railwayTypes := cfg.RoutingEngine().RailwayTypes

	switch cfg.Dataset.Source {
	case config.DatasetSourceGeoJSON:
		return geojson.NewFeatureRepository(cfg.Dataset.Path, logger), noop, nil

	case config.DatasetSourceOSMPBF:
		return osmpbf.NewFeatureRepository(cfg.Dataset.Path, railwayTypes, logger), noop, nil

	case config.DatasetSourcePostgres:
		db, err := postgresosm.New(&cfg.OSMDB, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to OSM PostgreSQL: %w", err)
		}
		return postgresosm.NewFeatureRepository(db, railwayTypes), db.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}
