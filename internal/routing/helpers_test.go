package routing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rail-route-service/internal/domain"
)

// meridianLine returns n points running north from (lat0, lon) over lengthKm.
func meridianLine(lat0, lon, lengthKm float64, n int) []domain.Point {
	dLat := lengthKm / kmPerDegree
	pts := make([]domain.Point, n)
	for i := range pts {
		pts[i] = domain.Point{Lat: lat0 + dLat*float64(i)/float64(n-1), Lon: lon}
	}
	return pts
}

// northOf moves p km kilometres north.
func northOf(p domain.Point, km float64) domain.Point {
	return domain.Point{Lat: p.Lat + km/kmPerDegree, Lon: p.Lon}
}

// eastOf moves p km kilometres east along its parallel.
func eastOf(p domain.Point, km float64) domain.Point {
	return domain.Point{Lat: p.Lat, Lon: p.Lon + km/(kmPerDegree*math.Cos(p.Lat*math.Pi/180))}
}

func lineFeature(id, railway string, coords []domain.Point) domain.Feature {
	return domain.Feature{
		ID:          id,
		Geometry:    domain.GeometryLineString,
		Coordinates: coords,
		Properties:  map[string]string{"railway": railway},
	}
}

func stationAt(id, name, railway string, p domain.Point) domain.Station {
	return domain.Station{ID: id, Name: name, Location: p, RailType: railway}
}

func segmentOf(id string, coords []domain.Point) Segment {
	return Segment{ID: id, Coordinates: coords, LengthKm: PathLength(coords)}
}

// randomSegments builds a reproducible tangle of short zig-zag tracks.
func randomSegments(seed int64, count int) []Segment {
	rnd := rand.New(rand.NewSource(seed))
	segments := make([]Segment, 0, count)
	for s := 0; s < count; s++ {
		p := domain.Point{Lat: -6.2 + rnd.Float64()*0.05, Lon: 106.8 + rnd.Float64()*0.05}
		coords := []domain.Point{p}
		for i := 0; i < 3+rnd.Intn(20); i++ {
			p = domain.Point{Lat: p.Lat + (rnd.Float64()-0.5)*0.004, Lon: p.Lon + (rnd.Float64()-0.5)*0.004}
			coords = append(coords, p)
		}
		segments = append(segments, segmentOf(fmt.Sprintf("s%d", s), coords))
	}
	return segments
}
