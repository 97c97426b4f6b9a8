package routing

import (
	"math"

	"github.com/samber/lo"

	"github.com/rail-route-service/internal/domain"
)

// NodeKey - координата с точностью 1e-6 градуса, ключ дедупликации узлов
type NodeKey struct {
	LatE6 int64
	LonE6 int64
}

func KeyOf(p domain.Point) NodeKey {
	return NodeKey{
		LatE6: int64(math.Round(p.Lat * 1e6)),
		LonE6: int64(math.Round(p.Lon * 1e6)),
	}
}

type Node struct {
	Index int
	Coord domain.Point
}

type Edge struct {
	To       int
	WeightKm float64
}

// Graph - неориентированный взвешенный граф путей.
// После построения только читается, запросы можно выполнять конкурентно.
type Graph struct {
	Nodes      []Node
	Adj        [][]Edge
	Components []int

	ComponentCount int
	SnapLinks      int

	keys  map[NodeKey]int
	index *pointIndex
}

func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount возвращает количество неориентированных рёбер
func (g *Graph) EdgeCount() int {
	total := 0
	for _, edges := range g.Adj {
		total += len(edges)
	}
	return total / 2
}

func (g *Graph) Empty() bool {
	return g == nil || len(g.Nodes) == 0
}

// NodeAt возвращает индекс узла с тем же ключом, что у p
func (g *Graph) NodeAt(p domain.Point) (int, bool) {
	i, ok := g.keys[KeyOf(p)]
	return i, ok
}

func (g *Graph) HasEdge(a, b int) bool {
	for _, e := range g.Adj[a] {
		if e.To == b {
			return true
		}
	}
	return false
}

// BuildGraph прореживает сегменты в узлы и соединяет соседние точки рёбрами.
// Затем связывает близкие узлы (snap-link) и размечает компоненты связности.
func BuildGraph(segments []Segment, cfg Config) *Graph {
	cfg = cfg.WithDefaults()
	g := &Graph{
		Nodes: make([]Node, 0),
		Adj:   make([][]Edge, 0),
		keys:  make(map[NodeKey]int),
	}

	for _, seg := range segments {
		if len(seg.Coordinates) < 2 {
			continue
		}

		prev := -1
		for _, c := range sampleCoordinates(seg.Coordinates, seg.LengthKm, cfg) {
			idx := g.addNode(c)
			if prev >= 0 && prev != idx {
				if w := Distance(g.Nodes[prev].Coord, g.Nodes[idx].Coord); w > 0 {
					g.link(prev, idx, w)
				}
			}
			prev = idx
		}
	}

	g.SnapLinks = g.snapLink(cfg.SnapLinkKm)
	g.ComponentCount = g.labelComponents()
	g.index = newPointIndex(lo.Map(g.Nodes, func(n Node, _ int) domain.Point { return n.Coord }))

	return g
}

// sampleCoordinates прореживает coords примерно до lengthKm/spacing точек, концы сохраняются
func sampleCoordinates(coords []domain.Point, lengthKm float64, cfg Config) []domain.Point {
	target := lo.Clamp(int(math.Round(lengthKm/cfg.SampleSpacingKm)), 2, cfg.MaxSamplePoints)
	n := len(coords)
	if n <= target {
		return coords
	}

	step := float64(n) / float64(target)
	sampled := make([]domain.Point, 0, target+1)
	last := -1
	for i := 0.0; i < float64(n); i += step {
		last = min(int(math.Round(i)), n-1)
		sampled = append(sampled, coords[last])
	}
	if last != n-1 {
		sampled = append(sampled, coords[n-1])
	}
	return sampled
}

func (g *Graph) addNode(p domain.Point) int {
	key := KeyOf(p)
	if idx, ok := g.keys[key]; ok {
		return idx
	}
	idx := len(g.Nodes)
	g.keys[key] = idx
	g.Nodes = append(g.Nodes, Node{Index: idx, Coord: p})
	g.Adj = append(g.Adj, nil)
	return idx
}

// link добавляет ребро a-b в обе стороны без дублей.
// true, если хотя бы одно направление новое.
func (g *Graph) link(a, b int, w float64) bool {
	added := false
	if !g.HasEdge(a, b) {
		g.Adj[a] = append(g.Adj[a], Edge{To: b, WeightKm: w})
		added = true
	}
	if !g.HasEdge(b, a) {
		g.Adj[b] = append(g.Adj[b], Edge{To: a, WeightKm: w})
		added = true
	}
	return added
}

// snapLink соединяет узлы ближе thresholdKm друг к другу. Ячейка сетки - thresholdKm/111
// градуса, по долготе просматривается столько ячеек, сколько нужно на широте узла.
// Возвращает количество новых связей.
func (g *Graph) snapLink(thresholdKm float64) int {
	if thresholdKm <= 0 || len(g.Nodes) < 2 {
		return 0
	}

	grid := newCellGrid(thresholdKm/111, thresholdKm, len(g.Nodes))
	for _, n := range g.Nodes {
		grid.insert(n.Coord.Lat, n.Coord.Lon, n.Index)
	}

	links := 0
	for _, n := range g.Nodes {
		grid.neighbours(n.Coord.Lat, n.Coord.Lon, func(other int) {
			if other == n.Index {
				return
			}
			d := Distance(n.Coord, g.Nodes[other].Coord)
			if d > 0 && d <= thresholdKm && g.link(n.Index, other, d) {
				links++
			}
		})
	}
	return links
}

// labelComponents размечает компоненты обходом в ширину в порядке узлов, возвращает их количество
func (g *Graph) labelComponents() int {
	g.Components = make([]int, len(g.Nodes))
	for i := range g.Components {
		g.Components[i] = -1
	}

	count := 0
	queue := make([]int, 0)
	for i := range g.Nodes {
		if g.Components[i] != -1 {
			continue
		}
		g.Components[i] = count
		queue = append(queue[:0], i)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, e := range g.Adj[v] {
				if g.Components[e.To] == -1 {
					g.Components[e.To] = count
					queue = append(queue, e.To)
				}
			}
		}
		count++
	}
	return count
}
