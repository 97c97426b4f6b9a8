package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamRouteRequest = "stream:route:request"
	StreamRouteDone    = "stream:route:done"
)

// RouteRequestEvent - входящее событие на расчёт маршрута
type RouteRequestEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	FromStationID string    `json:"from_station_id"`
	ToStationID   string    `json:"to_station_id"`
}

// Validate проверяет обязательные поля события
func (e *RouteRequestEvent) Validate() bool {
	return e.RequestID != uuid.Nil && e.FromStationID != "" && e.ToStationID != ""
}

// RouteDoneEvent - результат расчёта маршрута
type RouteDoneEvent struct {
	RequestID uuid.UUID     `json:"request_id"`
	Route     *RouteSummary `json:"route,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// RouteSummary - компактное представление маршрута для стрима
type RouteSummary struct {
	DistanceKm      float64     `json:"distance_km"`
	DurationMinutes int         `json:"duration_minutes"`
	Status          RouteStatus `json:"status"`
	StraightLine    bool        `json:"straight_line"`
	FallbackReason  string      `json:"fallback_reason,omitempty"`
	Path            []Point     `json:"path"`
	StationIDs      []string    `json:"station_ids"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
