package routing

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/rail-route-service/internal/domain"
)

// StationsAlongPath возвращает станции не дальше cfg.StationToleranceKm от пути
// в порядке индекса ближайшей точки пути. Для проверки близости длинный путь
// прореживается примерно до cfg.MaxStationSamples точек.
func StationsAlongPath(path []domain.Point, stations []domain.Station, cfg Config, excludeIDs ...string) []domain.StationOnRoute {
	cfg = cfg.WithDefaults()
	if len(path) == 0 {
		return []domain.StationOnRoute{}
	}

	sampled := path
	if len(path) > cfg.MaxStationSamples {
		stride := int(math.Ceil(float64(len(path)) / float64(cfg.MaxStationSamples)))
		sampled = lo.Filter(path, func(_ domain.Point, i int) bool { return i%stride == 0 })
	}

	along := make([]domain.StationOnRoute, 0)
	for i := range stations {
		st := &stations[i]
		if !st.IsStop() || lo.Contains(excludeIDs, st.ID) {
			continue
		}
		near := lo.ContainsBy(sampled, func(p domain.Point) bool {
			return Distance(st.Location, p) <= cfg.StationToleranceKm
		})
		if !near {
			continue
		}
		idx, d := nearestPathIndex(st.Location, path)
		along = append(along, domain.StationOnRoute{Station: *st, PathIndex: idx, DistanceKm: d})
	}

	slices.SortFunc(along, func(a, b domain.StationOnRoute) int {
		if c := cmp.Compare(a.PathIndex, b.PathIndex); c != 0 {
			return c
		}
		return strings.Compare(a.Station.ID, b.Station.ID)
	})
	return along
}

// nearestPathIndex - первый индекс ближайшей к p точки пути
func nearestPathIndex(p domain.Point, path []domain.Point) (int, float64) {
	best, bestD := 0, math.Inf(1)
	for i, q := range path {
		if d := Distance(p, q); d < bestD {
			best, bestD = i, d
		}
	}
	return best, bestD
}

// FilterConnectedStations оставляет станции не дальше thresholdKm от какой-либо точки сегментов
func FilterConnectedStations(stations []domain.Station, segments []Segment, thresholdKm float64) []domain.Station {
	points := make([]domain.Point, 0)
	for _, seg := range segments {
		points = append(points, seg.Coordinates...)
	}
	if len(points) == 0 {
		return []domain.Station{}
	}

	idx := newPointIndex(points)
	return lo.Filter(stations, func(st domain.Station, _ int) bool {
		found := false
		idx.within(st.Location, thresholdKm, func(int, float64) bool {
			found = true
			return false
		})
		return found
	})
}

// SearchStations ищет подстроку query в названии без учёта регистра.
// excludeID пропускается, порядок исходный, не больше limit результатов.
func SearchStations(stations []domain.Station, query, excludeID string, limit int) []domain.Station {
	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]domain.Station, 0, limit)
	if q == "" || limit <= 0 {
		return result
	}
	for _, st := range stations {
		if st.ID == excludeID || !strings.Contains(strings.ToLower(st.Name), q) {
			continue
		}
		result = append(result, st)
		if len(result) == limit {
			break
		}
	}
	return result
}
