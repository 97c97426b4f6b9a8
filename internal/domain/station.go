package domain

// Значения тега railway для пассажирских остановок
const (
	RailwayStation = "station"
	RailwayHalt    = "halt"
	RailwayStop    = "stop"
)

// Station - именованная точка датасета. Неизменяема после загрузки.
type Station struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Location Point             `json:"location"`
	RailType string            `json:"railway,omitempty"`
	Operator string            `json:"operator,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"`
}

// IsStop сообщает, является ли станция остановкой (station или halt)
func (s *Station) IsStop() bool {
	return s.RailType == RailwayStation || s.RailType == RailwayHalt
}
