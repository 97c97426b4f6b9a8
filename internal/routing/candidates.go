package routing

import (
	"cmp"
	"slices"

	"github.com/rail-route-service/internal/domain"
)

// Candidate - узел графа рядом с точкой запроса
type Candidate struct {
	Node   int
	DistKm float64
}

// FindCandidates возвращает до maxCandidates узлов в радиусе radiusKm от p,
// ближайшие первыми. При равном расстоянии раньше идёт меньший индекс узла.
func FindCandidates(g *Graph, p domain.Point, maxCandidates int, radiusKm float64) []Candidate {
	if g.Empty() || maxCandidates <= 0 {
		return nil
	}

	cands := make([]Candidate, 0, maxCandidates)
	collect := func(i int, d float64) bool {
		cands = append(cands, Candidate{Node: i, DistKm: d})
		return true
	}
	if g.index != nil {
		g.index.within(p, radiusKm, collect)
	} else {
		for _, n := range g.Nodes {
			if d := Distance(p, n.Coord); d <= radiusKm {
				collect(n.Index, d)
			}
		}
	}

	slices.SortFunc(cands, compareCandidates)
	if len(cands) > maxCandidates {
		cands = cands[:maxCandidates]
	}
	return cands
}

func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(a.DistKm, b.DistKm); c != 0 {
		return c
	}
	return cmp.Compare(a.Node, b.Node)
}

// componentSet - множество компонент, в которых лежат кандидаты
func componentSet(g *Graph, cands []Candidate) map[int]struct{} {
	set := make(map[int]struct{}, len(cands))
	for _, c := range cands {
		set[g.Components[c.Node]] = struct{}{}
	}
	return set
}
