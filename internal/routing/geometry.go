package routing

import (
	"math"
	"slices"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/pkg/utils"
)

// Distance - расстояние по большому кругу между a и b в км
func Distance(a, b domain.Point) float64 {
	return utils.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// PathLength - сумма расстояний между соседними точками
func PathLength(path []domain.Point) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

// Simplify выбрасывает промежуточные точки ближе minDistKm к последней оставленной.
// Первая и последняя точки сохраняются всегда.
func Simplify(path []domain.Point, minDistKm float64) []domain.Point {
	if len(path) <= 2 {
		return slices.Clone(path)
	}

	out := make([]domain.Point, 0, len(path))
	out = append(out, path[0])
	last := path[0]
	for _, p := range path[1 : len(path)-1] {
		if Distance(last, p) >= minDistKm {
			out = append(out, p)
			last = p
		}
	}
	return append(out, path[len(path)-1])
}

// EstimateDuration переводит расстояние в целые минуты при скорости speedKmh
func EstimateDuration(distanceKm, speedKmh float64) int {
	if speedKmh <= 0 {
		return 0
	}
	return int(math.Round(distanceKm / speedKmh * 60))
}
