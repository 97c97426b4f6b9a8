package domain

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Extend расширяет bbox так, чтобы он включал точку p.
// Нулевой bbox инициализируется первой точкой.
func (b *BoundingBox) Extend(p Point, first bool) {
	if first {
		*b = BoundingBox{MinLat: p.Lat, MinLon: p.Lon, MaxLat: p.Lat, MaxLon: p.Lon}
		return
	}
	b.MinLat = min(b.MinLat, p.Lat)
	b.MinLon = min(b.MinLon, p.Lon)
	b.MaxLat = max(b.MaxLat, p.Lat)
	b.MaxLon = max(b.MaxLon, p.Lon)
}
