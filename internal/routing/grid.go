package routing

import "math"

// maxGridLat - выше этой широты ячейка по долготе вырождается
const maxGridLat = 89.9

// cellGrid раскладывает индексы узлов по ячейкам cellDeg x cellDeg градусов.
// Соседи ищутся в радиусе radiusKm.
type cellGrid struct {
	cellDeg  float64
	radiusKm float64
	cells    map[uint64][]int
}

func newCellGrid(cellDeg, radiusKm float64, capacity int) *cellGrid {
	return &cellGrid{
		cellDeg:  cellDeg,
		radiusKm: radiusKm,
		cells:    make(map[uint64][]int, capacity),
	}
}

func (g *cellGrid) cell(lat, lon float64) (int32, int32) {
	return int32(math.Floor(lat / g.cellDeg)), int32(math.Floor(lon / g.cellDeg))
}

// cellKey упаковывает пару int32 индексов ячейки в один ключ uint64
func cellKey(latIdx, lonIdx int32) uint64 {
	return uint64(uint32(latIdx))<<32 | uint64(uint32(lonIdx))
}

func (g *cellGrid) insert(lat, lon float64, id int) {
	k := cellKey(g.cell(lat, lon))
	g.cells[k] = append(g.cells[k], id)
}

// lonReach - сколько ячеек по долготе в каждую сторону покрывают radiusKm.
// Градус долготы короче к полюсам, поэтому берётся самая высокая широта соседней полосы.
func (g *cellGrid) lonReach(lat float64) int32 {
	phi := math.Min(math.Abs(lat)+g.cellDeg, maxGridLat) * math.Pi / 180
	spanDeg := g.radiusKm / (kmPerDegree * math.Cos(phi))
	return max(1, int32(math.Ceil(spanDeg/g.cellDeg)))
}

// neighbours вызывает fn для всех id в ячейке (lat, lon), соседних полосах по широте
// и lonReach ячейках по долготе
func (g *cellGrid) neighbours(lat, lon float64, fn func(id int)) {
	bi, bj := g.cell(lat, lon)
	reach := g.lonReach(lat)
	for di := int32(-1); di <= 1; di++ {
		for dj := -reach; dj <= reach; dj++ {
			for _, id := range g.cells[cellKey(bi+di, bj+dj)] {
				fn(id)
			}
		}
	}
}
