package domain

import "time"

// DatasetStats - статистика по загруженному датасету и построенному графу
type DatasetStats struct {
	Source        string          `json:"source"`
	TotalStations int             `json:"total_stations"`
	StationTypes  map[string]int  `json:"station_types"`
	RailwayTypes  map[string]int  `json:"railway_types"`
	GeometryTypes map[string]int  `json:"geometry_types"`
	Elevation     *ElevationRange `json:"elevation,omitempty"`
	Coverage      *BoundingBox    `json:"coverage,omitempty"`
	Network       NetworkStats    `json:"network"`
	LoadedAt      time.Time       `json:"loaded_at"`
}

// ElevationRange по тегу ele, в метрах
type ElevationRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NetworkStats статистика графа
type NetworkStats struct {
	Segments          int     `json:"segments"`
	Nodes             int     `json:"nodes"`
	Edges             int     `json:"edges"`
	SnapLinks         int     `json:"snap_links"`
	Components        int     `json:"components"`
	ConnectedStations int     `json:"connected_stations"`
	TrackLengthKm     float64 `json:"track_length_km"`
}
