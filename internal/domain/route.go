package domain

// RouteStatus описывает, каким способом получен маршрут
type RouteStatus string

const (
	// RouteStatusRail - путь найден по графу
	RouteStatusRail RouteStatus = "rail"
	// RouteStatusBridged - компоненты графа соединены коротким переходом
	RouteStatusBridged RouteStatus = "bridged"
	// RouteStatusDirect - прямая линия между станциями
	RouteStatusDirect RouteStatus = "direct"
)

// StationOnRoute - промежуточная станция вдоль маршрута
type StationOnRoute struct {
	Station    Station `json:"station"`
	PathIndex  int     `json:"path_index"`
	DistanceKm float64 `json:"distance_km"`
}

type RouteResult struct {
	From            Station          `json:"from"`
	To              Station          `json:"to"`
	Path            []Point          `json:"path"`
	DistanceKm      float64          `json:"distance_km"`
	DurationMinutes int              `json:"duration_minutes"`
	StationsAlong   []StationOnRoute `json:"stations_along"`
	Status          RouteStatus      `json:"status"`
	StraightLine    bool             `json:"straight_line"`

	// FallbackReason заполняется только для Status == RouteStatusDirect
	FallbackReason error `json:"-"`
}
