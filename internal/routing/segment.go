package routing

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/rail-route-service/internal/domain"
)

// Segment - участок пути, пригодный для построения графа
type Segment struct {
	ID          string
	Coordinates []domain.Point
	LengthKm    float64
	Tags        map[string]string
}

// ExtractSegments оставляет линии с railway из cfg.RailwayTypes,
// минимум двумя координатами и длиной больше cfg.MinSegmentKm.
func ExtractSegments(features []domain.Feature, cfg Config) []Segment {
	cfg = cfg.WithDefaults()
	types := lo.Associate(cfg.RailwayTypes, func(t string) (string, struct{}) {
		return t, struct{}{}
	})

	segments := make([]Segment, 0)
	idx := 0
	for i := range features {
		f := &features[i]
		if f.Geometry != domain.GeometryLineString || len(f.Coordinates) < 2 {
			continue
		}
		if _, ok := types[f.Tag("railway")]; !ok {
			continue
		}

		lineIdx := idx
		idx++

		length := PathLength(f.Coordinates)
		if length <= cfg.MinSegmentKm {
			continue
		}

		segments = append(segments, Segment{
			ID:          featureID(f, "segment_", lineIdx),
			Coordinates: f.Coordinates,
			LengthKm:    length,
			Tags:        f.Properties,
		})
	}
	return segments
}

// ExtractStations превращает именованные точки в станции
func ExtractStations(features []domain.Feature) []domain.Station {
	stations := make([]domain.Station, 0)
	for i := range features {
		f := &features[i]
		if f.Geometry != domain.GeometryPoint || len(f.Coordinates) == 0 || f.Tag("name") == "" {
			continue
		}
		stations = append(stations, domain.Station{
			ID:       featureID(f, "station_", i),
			Name:     f.Tag("name"),
			Location: f.Coordinates[0],
			RailType: f.Tag("railway"),
			Operator: f.Tag("operator"),
			Tags:     f.Properties,
		})
	}
	return stations
}

func featureID(f *domain.Feature, prefix string, idx int) string {
	if f.ID != "" {
		return f.ID
	}
	if id := f.Tag("@id"); id != "" {
		return id
	}
	return prefix + strconv.Itoa(idx)
}
