package dto

// RouteRequest - запрос на построение маршрута между двумя станциями
type RouteRequest struct {
	FromStationID string `json:"from_station_id" validate:"required,max=128"`
	ToStationID   string `json:"to_station_id" validate:"required,max=128"`
}

// StationSearchRequest - поиск станций по подстроке названия
type StationSearchRequest struct {
	Query   string `query:"q" validate:"required,min=1,max=100"`
	Exclude string `query:"exclude" validate:"omitempty,max=128"`
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=50"`
}
