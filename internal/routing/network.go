package routing

import (
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/rail-route-service/internal/domain"
)

// Network - неизменяемый снапшот одной загрузки датасета:
// граф, сегменты, из которых он построен, и подключённые к нему станции.
type Network struct {
	Source   string
	Graph    *Graph
	Segments []Segment
	Stations []domain.Station
	Stats    domain.DatasetStats

	byID map[string]int
}

// NewNetwork выделяет из коллекции сегменты и станции и строит граф.
// Станции дальше cfg.StationLinkKm от путей отбрасываются.
func NewNetwork(fc *domain.FeatureCollection, cfg Config) *Network {
	cfg = cfg.WithDefaults()

	segments := ExtractSegments(fc.Features, cfg)
	all := ExtractStations(fc.Features)
	stations := FilterConnectedStations(all, segments, cfg.StationLinkKm)
	graph := BuildGraph(segments, cfg)

	n := &Network{
		Source:   fc.Source,
		Graph:    graph,
		Segments: segments,
		Stations: stations,
		byID:     make(map[string]int, len(stations)),
	}
	for i, st := range stations {
		if _, dup := n.byID[st.ID]; !dup {
			n.byID[st.ID] = i
		}
	}
	n.Stats = datasetStats(fc, n, len(all))
	return n
}

// Station возвращает подключённую станцию по id
func (n *Network) Station(id string) (domain.Station, bool) {
	if n == nil {
		return domain.Station{}, false
	}
	i, ok := n.byID[id]
	if !ok {
		return domain.Station{}, false
	}
	return n.Stations[i], true
}

// datasetStats - статистика исходной коллекции и построенной сети
func datasetStats(fc *domain.FeatureCollection, n *Network, namedPoints int) domain.DatasetStats {
	stats := domain.DatasetStats{
		Source:        fc.Source,
		TotalStations: namedPoints,
		StationTypes:  make(map[string]int),
		RailwayTypes:  make(map[string]int),
		GeometryTypes: make(map[string]int),
		LoadedAt:      time.Now().UTC(),
	}

	var (
		bbox    domain.BoundingBox
		hasBBox bool
		elev    domain.ElevationRange
		hasElev bool
	)
	for i := range fc.Features {
		f := &fc.Features[i]
		stats.GeometryTypes[string(f.Geometry)]++
		if rt := f.Tag("railway"); rt != "" {
			stats.RailwayTypes[rt]++
		}

		for _, p := range f.Coordinates {
			bbox.Extend(p, !hasBBox)
			hasBBox = true
		}

		if f.Geometry != domain.GeometryPoint {
			continue
		}
		if ele, err := strconv.ParseFloat(f.Tag("ele"), 64); err == nil {
			if !hasElev {
				elev = domain.ElevationRange{Min: ele, Max: ele}
				hasElev = true
			}
			elev.Min = min(elev.Min, ele)
			elev.Max = max(elev.Max, ele)
		}
	}

	for _, st := range n.Stations {
		if st.RailType != "" {
			stats.StationTypes[st.RailType]++
		}
	}
	if hasBBox {
		stats.Coverage = &bbox
	}
	if hasElev {
		stats.Elevation = &elev
	}

	stats.Network = domain.NetworkStats{
		Segments:          len(n.Segments),
		Nodes:             n.Graph.NodeCount(),
		Edges:             n.Graph.EdgeCount(),
		SnapLinks:         n.Graph.SnapLinks,
		Components:        n.Graph.ComponentCount,
		ConnectedStations: len(n.Stations),
		TrackLengthKm: lo.SumBy(n.Segments, func(s Segment) float64 {
			return s.LengthKm
		}),
	}
	return stats
}
