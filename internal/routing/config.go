package routing

// Config - параметры построения графа и поиска маршрута.
// Расстояния в километрах, нулевые поля заменяются значениями DefaultConfig.
type Config struct {
	RailwayTypes []string

	MinSegmentKm    float64
	SampleSpacingKm float64
	MaxSamplePoints int
	SnapLinkKm      float64

	MaxCandidates     int
	CandidateRadiusKm float64
	MaxDistanceKm     float64
	PairSanityKm      float64
	EndpointSnapKm    float64
	BridgeKm          float64

	SimplifyKm       float64
	BridgeSimplifyKm float64

	StationToleranceKm float64
	MaxStationSamples  int
	StationLinkKm      float64

	SpeedKmh float64
}

// DefaultRailwayTypes - значения тега railway, которые считаются путями
var DefaultRailwayTypes = []string{"rail", "light_rail", "subway", "monorail", "tram", "narrow_gauge"}

func DefaultConfig() Config {
	return Config{
		RailwayTypes:       DefaultRailwayTypes,
		MinSegmentKm:       0.003,
		SampleSpacingKm:    0.05,
		MaxSamplePoints:    1500,
		SnapLinkKm:         0.09,
		MaxCandidates:      6,
		CandidateRadiusKm:  6,
		MaxDistanceKm:      6000,
		PairSanityKm:       5500,
		EndpointSnapKm:     0.02,
		BridgeKm:           4,
		SimplifyKm:         0.003,
		BridgeSimplifyKm:   0.002,
		StationToleranceKm: 1.0,
		MaxStationSamples:  180,
		StationLinkKm:      4,
		SpeedKmh:           60,
	}
}

// WithDefaults заполняет нулевые поля значениями по умолчанию
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if len(c.RailwayTypes) == 0 {
		c.RailwayTypes = d.RailwayTypes
	}
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&c.MinSegmentKm, d.MinSegmentKm)
	fill(&c.SampleSpacingKm, d.SampleSpacingKm)
	fill(&c.SnapLinkKm, d.SnapLinkKm)
	fill(&c.CandidateRadiusKm, d.CandidateRadiusKm)
	fill(&c.MaxDistanceKm, d.MaxDistanceKm)
	fill(&c.PairSanityKm, d.PairSanityKm)
	fill(&c.EndpointSnapKm, d.EndpointSnapKm)
	fill(&c.BridgeKm, d.BridgeKm)
	fill(&c.SimplifyKm, d.SimplifyKm)
	fill(&c.BridgeSimplifyKm, d.BridgeSimplifyKm)
	fill(&c.StationToleranceKm, d.StationToleranceKm)
	fill(&c.StationLinkKm, d.StationLinkKm)
	fill(&c.SpeedKmh, d.SpeedKmh)
	if c.MaxSamplePoints == 0 {
		c.MaxSamplePoints = d.MaxSamplePoints
	}
	if c.MaxCandidates == 0 {
		c.MaxCandidates = d.MaxCandidates
	}
	if c.MaxStationSamples == 0 {
		c.MaxStationSamples = d.MaxStationSamples
	}
	return c
}
