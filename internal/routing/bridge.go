package routing

import "github.com/rail-route-service/internal/domain"

// componentsDisjoint - ни один кандидат отправления не лежит в одной компоненте с кандидатом назначения
func componentsDisjoint(g *Graph, fromCands, toCands []Candidate) bool {
	fromComps := componentSet(g, fromCands)
	for c := range componentSet(g, toCands) {
		if _, ok := fromComps[c]; ok {
			return false
		}
	}
	return true
}

// Bridge соединяет две несвязные компоненты прямым переходом между ближайшей
// парой кандидатов, если они не дальше cfg.BridgeKm друг от друга.
// Путь: from, nodeA, nodeB, to, после упрощения.
func Bridge(g *Graph, from, to domain.Point, fromCands, toCands []Candidate, cfg Config) ([]domain.Point, bool) {
	cfg = cfg.WithDefaults()

	bestA, bestB := -1, -1
	bestD := 0.0
	for _, fc := range fromCands {
		for _, tc := range toCands {
			if g.Components[fc.Node] == g.Components[tc.Node] {
				continue
			}
			d := Distance(g.Nodes[fc.Node].Coord, g.Nodes[tc.Node].Coord)
			if d <= cfg.BridgeKm && (bestA < 0 || d < bestD) {
				bestA, bestB, bestD = fc.Node, tc.Node, d
			}
		}
	}
	if bestA < 0 {
		return nil, false
	}

	path := []domain.Point{from, g.Nodes[bestA].Coord, g.Nodes[bestB].Coord, to}
	return Simplify(path, cfg.BridgeSimplifyKm), true
}
