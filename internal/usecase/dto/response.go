package dto

import "github.com/rail-route-service/internal/domain"

// StationDTO - станция в ответах API
type StationDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Railway  string  `json:"railway,omitempty"`
	Operator string  `json:"operator,omitempty"`
}

// StationAlongDTO - промежуточная станция маршрута
type StationAlongDTO struct {
	StationDTO
	PathIndex  int     `json:"path_index"`
	DistanceKm float64 `json:"distance_km"`
}

// RouteResponse - построенный маршрут
type RouteResponse struct {
	From            StationDTO         `json:"from"`
	To              StationDTO         `json:"to"`
	Path            []domain.Point     `json:"path"`
	DistanceKm      float64            `json:"distance_km"`
	DurationMinutes int                `json:"duration_minutes"`
	Status          domain.RouteStatus `json:"status"`
	StraightLine    bool               `json:"straight_line"`
	FallbackReason  string             `json:"fallback_reason,omitempty"`
	StationsAlong   []StationAlongDTO  `json:"stations_along"`
}

// StationSearchResponse - результат поиска станций
type StationSearchResponse struct {
	Stations []StationDTO `json:"stations"`
	Total    int          `json:"total"`
}

// ReloadResponse - итог перезагрузки сети
type ReloadResponse struct {
	Source     string  `json:"source"`
	Stations   int     `json:"stations"`
	Nodes      int     `json:"nodes"`
	Edges      int     `json:"edges"`
	Components int     `json:"components"`
	FromCache  bool    `json:"from_cache"`
	TookMs     float64 `json:"took_ms"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status        string `json:"status"`
	NetworkLoaded bool   `json:"network_loaded"`
	Source        string `json:"source,omitempty"`
	Stations      int    `json:"stations"`
	Cache         string `json:"cache,omitempty"`
}
