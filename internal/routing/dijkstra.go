package routing

import (
	"math"

	"github.com/samber/lo"
)

// PathResult - путь по узлам графа и его длина
type PathResult struct {
	Nodes      []int
	DistanceKm float64
}

// ShortestPath - Dijkstra от start до goal. Поиск прекращается, когда
// расстояние превысило maxDistanceKm. ok == false, если goal недостижим.
func ShortestPath(g *Graph, start, goal int, maxDistanceKm float64) (PathResult, bool) {
	n := g.NodeCount()
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return PathResult{}, false
	}

	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[start] = 0

	pq := make(priorityQueue, 0, 64)
	pq.push(start, 0)

	for pq.Len() > 0 {
		cur := pq.pop()
		if cur.dist != dist[cur.node] {
			continue
		}
		if cur.node == goal {
			break
		}
		if cur.dist > maxDistanceKm {
			return PathResult{}, false
		}

		for _, e := range g.Adj[cur.node] {
			nd := cur.dist + e.WeightKm
			if nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = cur.node
				pq.push(e.To, nd)
			}
		}
	}

	if math.IsInf(dist[goal], 1) {
		return PathResult{}, false
	}

	return PathResult{Nodes: reconstructPath(prev, goal), DistanceKm: dist[goal]}, true
}

func reconstructPath(prev []int, goal int) []int {
	path := make([]int, 0)
	for c := goal; c != -1; c = prev[c] {
		path = append(path, c)
	}
	return lo.Reverse(path)
}
