package postgresosm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rail-route-service/internal/domain"
)

func parseTags(raw []byte) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}

	var tmp map[string]string
	if err := json.Unmarshal(raw, &tmp); err != nil || tmp == nil {
		return map[string]string{}
	}

	return tmp
}

// mergeColumns дописывает значения выделенных колонок osm2pgsql в теги
func mergeColumns(tags map[string]string, columns map[string]string) map[string]string {
	for k, v := range columns {
		if v = strings.TrimSpace(v); v != "" {
			tags[k] = v
		}
	}
	return tags
}

// osmFeatureID - osm2pgsql хранит relation с отрицательным osm_id
func osmFeatureID(kind string, osmID int64) string {
	if osmID < 0 {
		return fmt.Sprintf("relation/%d", -osmID)
	}
	return fmt.Sprintf("%s/%d", kind, osmID)
}

// parseLineGeometry разбирает результат ST_AsGeoJSON в набор линий lat/lon
func parseLineGeometry(raw string) ([][]domain.Point, error) {
	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}

	var lines []orb.LineString
	switch geom := g.Geometry().(type) {
	case orb.LineString:
		lines = []orb.LineString{geom}
	case orb.MultiLineString:
		lines = geom
	default:
		return nil, fmt.Errorf("unsupported geometry %s", g.Type)
	}

	result := make([][]domain.Point, 0, len(lines))
	for _, ls := range lines {
		coords := make([]domain.Point, len(ls))
		for i, p := range ls {
			coords[i] = domain.Point{Lat: p.Lat(), Lon: p.Lon()}
		}
		result = append(result, coords)
	}
	return result, nil
}
