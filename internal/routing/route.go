package routing

import (
	"github.com/rail-route-service/internal/domain"
)

// RoutePath строит ломаную по путям между двумя координатами.
//
// Перебираются все пары кандидатов отправления и назначения. Побеждает пара
// с минимальной суммой длины пути и расстояний до обоих кандидатов. При равенстве
// выигрывает меньший индекс узла отправления, затем меньший индекс узла назначения.
// Если ни одна пара не связана и кандидаты лежат в разных компонентах, разрыв
// закрывается мостом. Ошибки: ErrEmptyGraph, ErrNoNodesNearStation, ErrNoPathFound.
func RoutePath(g *Graph, from, to domain.Point, cfg Config) ([]domain.Point, domain.RouteStatus, error) {
	cfg = cfg.WithDefaults()
	if g.Empty() {
		return nil, "", ErrEmptyGraph
	}

	fromCands := FindCandidates(g, from, cfg.MaxCandidates, cfg.CandidateRadiusKm)
	toCands := FindCandidates(g, to, cfg.MaxCandidates, cfg.CandidateRadiusKm)
	if len(fromCands) == 0 || len(toCands) == 0 {
		return nil, "", ErrNoNodesNearStation
	}

	type choice struct {
		from, to Candidate
		path     PathResult
		total    float64
	}
	var best *choice

	for _, fc := range fromCands {
		for _, tc := range toCands {
			if Distance(g.Nodes[fc.Node].Coord, g.Nodes[tc.Node].Coord) > cfg.PairSanityKm {
				continue
			}
			res, ok := ShortestPath(g, fc.Node, tc.Node, cfg.MaxDistanceKm)
			if !ok {
				continue
			}
			total := res.DistanceKm + fc.DistKm + tc.DistKm
			if best == nil || total < best.total ||
				(total == best.total && (fc.Node < best.from.Node ||
					(fc.Node == best.from.Node && tc.Node < best.to.Node))) {
				best = &choice{from: fc, to: tc, path: res, total: total}
			}
		}
	}

	if best == nil {
		if componentsDisjoint(g, fromCands, toCands) {
			if path, ok := Bridge(g, from, to, fromCands, toCands, cfg); ok {
				return path, domain.RouteStatusBridged, nil
			}
		}
		return nil, "", ErrNoPathFound
	}

	coords := attachEndpoints(g, best.path.Nodes, from, to, best.from.DistKm, best.to.DistKm, cfg.EndpointSnapKm)
	return Simplify(coords, cfg.SimplifyKm), domain.RouteStatusRail, nil
}

// attachEndpoints превращает путь по узлам в координаты от from до to.
// Станция дальше snapKm от своего узла добавляется отдельной точкой,
// более близкая заменяет координату узла.
func attachEndpoints(g *Graph, nodes []int, from, to domain.Point, fromDist, toDist, snapKm float64) []domain.Point {
	coords := make([]domain.Point, 0, len(nodes)+2)
	if fromDist > snapKm {
		coords = append(coords, from)
	}
	for _, n := range nodes {
		coords = append(coords, g.Nodes[n].Coord)
	}
	if fromDist <= snapKm {
		coords[0] = from
	}

	// у пути из одного узла его координата уже заменена на from
	if toDist > snapKm || len(coords) == 1 {
		coords = append(coords, to)
	} else {
		coords[len(coords)-1] = to
	}
	return coords
}

// FindRoute строит маршрут между двумя станциями и всегда возвращает результат.
// Если пути по рельсам нет, это прямая линия: StraightLine = true,
// в FallbackReason лежит ошибка маршрутизации.
func FindRoute(g *Graph, stations []domain.Station, from, to domain.Station, cfg Config) *domain.RouteResult {
	cfg = cfg.WithDefaults()

	path, status, err := RoutePath(g, from.Location, to.Location, cfg)
	if err != nil || len(path) < 2 {
		if err == nil {
			err = ErrNoPathFound
		}
		path = []domain.Point{from.Location, to.Location}
		status = domain.RouteStatusDirect
	}

	distance := PathLength(path)
	result := &domain.RouteResult{
		From:            from,
		To:              to,
		Path:            path,
		DistanceKm:      distance,
		DurationMinutes: EstimateDuration(distance, cfg.SpeedKmh),
		StationsAlong:   StationsAlongPath(path, stations, cfg, from.ID, to.ID),
		Status:          status,
		StraightLine:    status == domain.RouteStatusDirect,
	}
	if status == domain.RouteStatusDirect {
		result.FallbackReason = err
	}
	return result
}
