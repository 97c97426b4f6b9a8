package osmpbf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/domain/repository"
)

// SourceName - имя источника для логов и ключей кеша
const SourceName = "osmpbf"

type featureRepository struct {
	path         string
	railwayTypes map[string]struct{}
	logger       *zap.Logger
}

// NewFeatureRepository читает станции и пути напрямую из OSM PBF выгрузки
func NewFeatureRepository(path string, railwayTypes []string, logger *zap.Logger) repository.FeatureRepository {
	return &featureRepository{
		path: path,
		railwayTypes: lo.Associate(railwayTypes, func(t string) (string, struct{}) {
			return t, struct{}{}
		}),
		logger: logger,
	}
}

func (r *featureRepository) Source() string {
	return SourceName
}

func (r *featureRepository) Fingerprint() string {
	return domain.DatasetFingerprint(SourceName, filepath.Clean(r.path), lo.Keys(r.railwayTypes))
}

// wayRef - путь из первого прохода, координаты узлов ещё не известны
type wayRef struct {
	id    osm.WayID
	nodes []osm.NodeID
	tags  osm.Tags
}

// LoadFeatures делает два прохода по файлу:
// 1) пути с подходящим тегом railway и id их узлов;
// 2) координаты нужных узлов и узлы-станции.
func (r *featureRepository) LoadFeatures(ctx context.Context) (*domain.FeatureCollection, error) {
	file, err := os.Open(r.path)
	if err != nil {
		r.logger.Error("Failed to open pbf", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	defer file.Close()

	ways, needed, err := r.scanWays(ctx, file)
	if err != nil {
		return nil, err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind %s: %w", r.path, err)
	}

	coords, stations, err := r.scanNodes(ctx, file, needed)
	if err != nil {
		return nil, err
	}

	features := make([]domain.Feature, 0, len(stations)+len(ways))
	features = append(features, stations...)

	missing := 0
	for _, w := range ways {
		f, dropped := wayFeature(w, coords)
		missing += dropped
		if len(f.Coordinates) < 2 {
			continue
		}
		features = append(features, f)
	}

	r.logger.Info("Dataset loaded",
		zap.String("source", SourceName),
		zap.String("path", r.path),
		zap.Int("ways", len(ways)),
		zap.Int("stations", len(stations)),
		zap.Int("missing_nodes", missing))

	return &domain.FeatureCollection{Source: SourceName, Features: features}, nil
}

func (r *featureRepository) scanWays(ctx context.Context, f io.Reader) ([]wayRef, map[osm.NodeID]struct{}, error) {
	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	ways := make([]wayRef, 0)
	needed := make(map[osm.NodeID]struct{})
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || !r.isRailway(way.Tags) {
			continue
		}
		ids := way.Nodes.NodeIDs()
		for _, id := range ids {
			needed[id] = struct{}{}
		}
		ways = append(ways, wayRef{id: way.ID, nodes: ids, tags: way.Tags})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("pbf ways scan: %w", err)
	}

	return ways, needed, nil
}

func (r *featureRepository) scanNodes(ctx context.Context, f io.Reader, needed map[osm.NodeID]struct{}) (map[osm.NodeID]domain.Point, []domain.Feature, error) {
	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	coords := make(map[osm.NodeID]domain.Point, len(needed))
	stations := make([]domain.Feature, 0)
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, want := needed[node.ID]; want {
			coords[node.ID] = domain.Point{Lat: node.Lat, Lon: node.Lon}
		}
		if isStationNode(node.Tags) {
			stations = append(stations, nodeFeature(node))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("pbf nodes scan: %w", err)
	}

	return coords, stations, nil
}

func (r *featureRepository) isRailway(tags osm.Tags) bool {
	_, ok := r.railwayTypes[tags.Find("railway")]
	return ok
}

// isStationNode - именованная станция, платформа-остановка или halt
func isStationNode(tags osm.Tags) bool {
	if tags.Find("name") == "" {
		return false
	}
	switch tags.Find("railway") {
	case domain.RailwayStation, domain.RailwayHalt, domain.RailwayStop:
		return true
	}
	return false
}

func nodeFeature(node *osm.Node) domain.Feature {
	return domain.Feature{
		ID:          fmt.Sprintf("node/%d", node.ID),
		Geometry:    domain.GeometryPoint,
		Coordinates: []domain.Point{{Lat: node.Lat, Lon: node.Lon}},
		Properties:  node.Tags.Map(),
	}
}

// wayFeature собирает линию по известным координатам, возвращает число пропущенных узлов.
// В обрезанных выгрузках часть узлов пути может отсутствовать.
func wayFeature(w wayRef, coords map[osm.NodeID]domain.Point) (domain.Feature, int) {
	points := make([]domain.Point, 0, len(w.nodes))
	missing := 0
	for _, id := range w.nodes {
		p, ok := coords[id]
		if !ok {
			missing++
			continue
		}
		points = append(points, p)
	}

	return domain.Feature{
		ID:          fmt.Sprintf("way/%d", w.id),
		Geometry:    domain.GeometryLineString,
		Coordinates: points,
		Properties:  w.tags.Map(),
	}, missing
}
