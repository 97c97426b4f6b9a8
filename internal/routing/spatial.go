package routing

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/rail-route-service/internal/domain"
)

// kmPerDegree - длина градуса широты на сфере haversine
const kmPerDegree = earthRadiusKm * math.Pi / 180

const earthRadiusKm = 6371.0

// pointIndex - R-tree по точкам, значение - позиция точки в срезе.
// Прямоугольники в порядке [lat, lon].
type pointIndex struct {
	tree   rtree.RTree
	points []domain.Point
}

func newPointIndex(points []domain.Point) *pointIndex {
	idx := &pointIndex{points: points}
	for i, p := range points {
		pt := [2]float64{p.Lat, p.Lon}
		idx.tree.Insert(pt, pt, i)
	}
	return idx
}

// searchBox возвращает прямоугольник lat/lon, покрывающий radiusKm вокруг p.
// ok == false, если прямоугольник переходит через полюс или антимеридиан.
func searchBox(p domain.Point, radiusKm float64) (minB, maxB [2]float64, ok bool) {
	// запас 1% на разницу между прямоугольником и окружностью haversine
	dLat := radiusKm / kmPerDegree * 1.01
	if p.Lat-dLat <= -90 || p.Lat+dLat >= 90 {
		return minB, maxB, false
	}
	cosLat := math.Cos((math.Abs(p.Lat) + dLat) * math.Pi / 180)
	if cosLat <= 1e-6 {
		return minB, maxB, false
	}
	dLon := dLat / cosLat
	if p.Lon-dLon < -180 || p.Lon+dLon > 180 {
		return minB, maxB, false
	}
	return [2]float64{p.Lat - dLat, p.Lon - dLon}, [2]float64{p.Lat + dLat, p.Lon + dLon}, true
}

// within вызывает fn для каждой точки в радиусе radiusKm от p, порядок не определён.
// Обход прекращается, когда fn возвращает false.
func (idx *pointIndex) within(p domain.Point, radiusKm float64, fn func(i int, d float64) bool) {
	visit := func(i int) bool {
		d := Distance(p, idx.points[i])
		if d > radiusKm {
			return true
		}
		return fn(i, d)
	}

	minB, maxB, ok := searchBox(p, radiusKm)
	if !ok {
		for i := range idx.points {
			if !visit(i) {
				return
			}
		}
		return
	}

	idx.tree.Search(minB, maxB, func(_, _ [2]float64, data interface{}) bool {
		return visit(data.(int))
	})
}
