package postgresosm

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/domain/repository"
)

// SourceName - имя источника для логов и ключей кеша
const SourceName = "postgres"

// stationTypes - значения railway для точек-станций
var stationTypes = []string{domain.RailwayStation, domain.RailwayHalt, domain.RailwayStop}

type featureRepository struct {
	db           *DB
	railwayTypes []string
}

// NewFeatureRepository читает станции и пути из базы osm2pgsql
func NewFeatureRepository(db *DB, railwayTypes []string) repository.FeatureRepository {
	return &featureRepository{
		db:           db,
		railwayTypes: railwayTypes,
	}
}

func (r *featureRepository) Source() string {
	return SourceName
}

func (r *featureRepository) Fingerprint() string {
	return domain.DatasetFingerprint(SourceName, r.db.Addr(), r.railwayTypes)
}

type stationRow struct {
	OSMID    int64   `db:"osm_id"`
	Name     string  `db:"name"`
	Railway  string  `db:"railway"`
	Operator string  `db:"operator"`
	Lat      float64 `db:"lat"`
	Lon      float64 `db:"lon"`
	TagsJSON []byte  `db:"tags_json"`
}

type lineRow struct {
	OSMID    int64  `db:"osm_id"`
	Name     string `db:"name"`
	Railway  string `db:"railway"`
	Geometry string `db:"geometry"`
	TagsJSON []byte `db:"tags_json"`
}

func (r *featureRepository) LoadFeatures(ctx context.Context) (*domain.FeatureCollection, error) {
	stations, err := r.loadStations(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := r.loadLines(ctx)
	if err != nil {
		return nil, err
	}

	r.db.logger.Info("Dataset loaded",
		zap.String("source", SourceName),
		zap.Int("stations", len(stations)),
		zap.Int("lines", len(lines)))

	return &domain.FeatureCollection{
		Source:   SourceName,
		Features: append(stations, lines...),
	}, nil
}

func (r *featureRepository) loadStations(ctx context.Context) ([]domain.Feature, error) {
	query := fmt.Sprintf(`
		SELECT
			osm_id,
			name,
			railway,
			COALESCE(operator, '') AS operator,
			ST_Y(ST_Transform(way, %d)) AS lat,
			ST_X(ST_Transform(way, %d)) AS lon,
			%s AS tags_json
		FROM %s
		WHERE railway = ANY($1)
		  AND name IS NOT NULL AND name <> ''
		ORDER BY osm_id
	`, SRID4326, SRID4326, tagsExpr, planetPointTable)

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(stationTypes)); err != nil {
		r.db.logger.Error("Failed to load stations", zap.Error(err))
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	features := make([]domain.Feature, 0, len(rows))
	for _, row := range rows {
		features = append(features, stationFeature(row))
	}
	return features, nil
}

func (r *featureRepository) loadLines(ctx context.Context) ([]domain.Feature, error) {
	query := fmt.Sprintf(`
		SELECT
			osm_id,
			COALESCE(name, '') AS name,
			railway,
			ST_AsGeoJSON(ST_Transform(way, %d)) AS geometry,
			%s AS tags_json
		FROM %s
		WHERE railway = ANY($1)
		ORDER BY osm_id
	`, SRID4326, tagsExpr, planetLineTable)

	var rows []lineRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(r.railwayTypes)); err != nil {
		r.db.logger.Error("Failed to load railway lines", zap.Error(err))
		return nil, fmt.Errorf("failed to load railway lines: %w", err)
	}

	features := make([]domain.Feature, 0, len(rows))
	for _, row := range rows {
		parts, err := lineFeatures(row)
		if err != nil {
			r.db.logger.Warn("Skipping railway line",
				zap.Int64("osm_id", row.OSMID),
				zap.Error(err))
			continue
		}
		features = append(features, parts...)
	}
	return features, nil
}

func stationFeature(row stationRow) domain.Feature {
	return domain.Feature{
		ID:          osmFeatureID("node", row.OSMID),
		Geometry:    domain.GeometryPoint,
		Coordinates: []domain.Point{{Lat: row.Lat, Lon: row.Lon}},
		Properties: mergeColumns(parseTags(row.TagsJSON), map[string]string{
			"name":     row.Name,
			"railway":  row.Railway,
			"operator": row.Operator,
		}),
	}
}

func lineFeatures(row lineRow) ([]domain.Feature, error) {
	lines, err := parseLineGeometry(row.Geometry)
	if err != nil {
		return nil, err
	}

	id := osmFeatureID("way", row.OSMID)
	features := make([]domain.Feature, 0, len(lines))
	for i, coords := range lines {
		partID := id
		if len(lines) > 1 {
			partID = fmt.Sprintf("%s#%d", id, i)
		}
		features = append(features, domain.Feature{
			ID:          partID,
			Geometry:    domain.GeometryLineString,
			Coordinates: coords,
			Properties: mergeColumns(parseTags(row.TagsJSON), map[string]string{
				"name":    row.Name,
				"railway": row.Railway,
			}),
		})
	}
	return features, nil
}
