package routing

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rail-route-service/internal/domain"
)

type RouteSuite struct {
	suite.Suite

	cfg      Config
	main     []domain.Point // 10 km, node every 100 m
	spur     []domain.Point // starts 1 km past the end of main
	far      []domain.Point // separate line ~55 km east
	graph    *Graph
	stations []domain.Station
}

func (s *RouteSuite) SetupSuite() {
	s.cfg = DefaultConfig()
	s.main = meridianLine(-6.3, 106.8, 10, 101)
	spurStart := northOf(s.main[100], 1)
	s.spur = meridianLine(spurStart.Lat, spurStart.Lon, 5, 51)
	s.far = meridianLine(-6.3, 107.3, 5, 51)

	features := []domain.Feature{
		lineFeature("way/main", "rail", s.main),
		lineFeature("way/spur", "rail", s.spur),
		lineFeature("way/far", "light_rail", s.far),
	}
	s.graph = BuildGraph(ExtractSegments(features, s.cfg), s.cfg)

	s.stations = []domain.Station{
		stationAt("A", "Alpha", "station", s.main[10]),
		stationAt("B", "Bravo", "station", s.main[30]),
		stationAt("F", "Foxtrot", "station", s.main[95]),
		stationAt("G", "Golf", "halt", s.spur[5]),
		stationAt("D", "Delta", "station", s.far[10]),
		stationAt("E", "Echo", "station", domain.Point{Lat: -6.3, Lon: 108}),
	}
}

func (s *RouteSuite) station(id string) domain.Station {
	for _, st := range s.stations {
		if st.ID == id {
			return st
		}
	}
	s.FailNow("unknown station " + id)
	return domain.Station{}
}

func (s *RouteSuite) TestGraphShape() {
	s.Equal(3, s.graph.ComponentCount)
	s.Equal(101+51+51, s.graph.NodeCount())
}

func (s *RouteSuite) TestSameSegmentTwoKilometres() {
	res := FindRoute(s.graph, s.stations, s.station("A"), s.station("B"), s.cfg)

	s.Equal(domain.RouteStatusRail, res.Status)
	s.False(res.StraightLine)
	s.NoError(res.FallbackReason)
	s.InDelta(2.0, res.DistanceKm, 0.01)
	s.Equal(2, res.DurationMinutes)
	s.Empty(res.StationsAlong)
}

func (s *RouteSuite) TestStationOnNodeIsNotDistorted() {
	a := s.station("A")
	cands := FindCandidates(s.graph, a.Location, s.cfg.MaxCandidates, s.cfg.CandidateRadiusKm)
	s.Require().NotEmpty(cands)
	s.Equal(0.0, cands[0].DistKm)
	s.Equal(a.Location, s.graph.Nodes[cands[0].Node].Coord)

	path, status, err := RoutePath(s.graph, a.Location, s.station("B").Location, s.cfg)
	s.Require().NoError(err)
	s.Equal(domain.RouteStatusRail, status)
	s.Equal(a.Location, path[0])
	s.Equal(s.station("B").Location, path[len(path)-1])
	s.Len(path, 21)
}

func (s *RouteSuite) TestOffTrackStationIsPrepended() {
	off := eastOf(s.main[50], 0.5)
	path, _, err := RoutePath(s.graph, off, s.station("B").Location, s.cfg)
	s.Require().NoError(err)

	s.Equal(off, path[0])
	_, onNode := s.graph.NodeAt(path[1])
	s.True(onNode)
	s.Greater(Distance(path[0], path[1]), s.cfg.EndpointSnapKm)
	s.Equal(s.station("B").Location, path[len(path)-1])
}

func (s *RouteSuite) TestReverseRouteHasSameDistance() {
	ab := FindRoute(s.graph, s.stations, s.station("A"), s.station("F"), s.cfg)
	ba := FindRoute(s.graph, s.stations, s.station("F"), s.station("A"), s.cfg)

	s.InDelta(ab.DistanceKm, ba.DistanceKm, 1e-9)
	s.Equal(len(ab.Path), len(ba.Path))
}

func (s *RouteSuite) TestBridgesNearbyComponents() {
	f, g := s.station("F"), s.station("G")
	res := FindRoute(s.graph, s.stations, f, g, s.cfg)

	s.Equal(domain.RouteStatusBridged, res.Status)
	s.False(res.StraightLine)
	s.Len(res.Path, 4)
	s.Equal(f.Location, res.Path[0])
	s.Equal(g.Location, res.Path[3])
	s.GreaterOrEqual(res.DistanceKm, Distance(f.Location, g.Location)-1e-9)
}

func (s *RouteSuite) TestBridgeThresholdIsConfigurable() {
	cfg := s.cfg
	cfg.BridgeKm = 1
	res := FindRoute(s.graph, s.stations, s.station("F"), s.station("G"), cfg)

	s.Equal(domain.RouteStatusDirect, res.Status)
	s.ErrorIs(res.FallbackReason, ErrNoPathFound)
}

func (s *RouteSuite) TestDisjointFarComponentsFallBackToDirect() {
	a, d := s.station("A"), s.station("D")
	res := FindRoute(s.graph, s.stations, a, d, s.cfg)

	s.Equal(domain.RouteStatusDirect, res.Status)
	s.True(res.StraightLine)
	s.ErrorIs(res.FallbackReason, ErrNoPathFound)
	s.Equal([]domain.Point{a.Location, d.Location}, res.Path)
	s.InDelta(Distance(a.Location, d.Location), res.DistanceKm, 1e-9)
}

func (s *RouteSuite) TestStationFarFromNetwork() {
	_, _, err := RoutePath(s.graph, s.station("A").Location, s.station("E").Location, s.cfg)
	s.ErrorIs(err, ErrNoNodesNearStation)

	res := FindRoute(s.graph, s.stations, s.station("E"), s.station("A"), s.cfg)
	s.True(res.StraightLine)
	s.ErrorIs(res.FallbackReason, ErrNoNodesNearStation)
}

func (s *RouteSuite) TestEmptyGraph() {
	res := FindRoute(BuildGraph(nil, s.cfg), s.stations, s.station("A"), s.station("B"), s.cfg)
	s.True(res.StraightLine)
	s.ErrorIs(res.FallbackReason, ErrEmptyGraph)
	s.InDelta(2.0, res.DistanceKm, 1e-6)
}

func (s *RouteSuite) TestIntermediateStationsInPathOrder() {
	stations := append([]domain.Station{
		stationAt("P", "Papa", "station", eastOf(s.main[35], 0.2)),
		stationAt("M", "Mike", "halt", eastOf(s.main[20], 0.3)),
		stationAt("S", "Sierra", "stop", s.main[25]),
		stationAt("Q", "Quebec", "station", eastOf(s.main[20], 3)),
	}, s.stations...)

	res := FindRoute(s.graph, stations, s.station("A"), s.station("B"), s.cfg)
	s.Require().Len(res.StationsAlong, 2)
	s.Equal("M", res.StationsAlong[0].Station.ID)
	s.Equal(10, res.StationsAlong[0].PathIndex)
	s.InDelta(0.3, res.StationsAlong[0].DistanceKm, 0.001)
	s.Equal("P", res.StationsAlong[1].Station.ID)
	s.Equal(len(res.Path)-1, res.StationsAlong[1].PathIndex)
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

func TestRoutePath_TieBreakPrefersLowestNodeIndex(t *testing.T) {
	from := domain.Point{}
	to := domain.Point{Lon: 0.01}
	south := domain.Point{Lat: -0.001}
	north := domain.Point{Lat: 0.001}

	cfg := DefaultConfig()
	cfg.MaxCandidates = 2

	for _, order := range [][]Segment{
		{segmentOf("s", []domain.Point{south, to}), segmentOf("n", []domain.Point{north, to})},
		{segmentOf("n", []domain.Point{north, to}), segmentOf("s", []domain.Point{south, to})},
	} {
		g := BuildGraph(order, DefaultConfig())
		first := g.Nodes[0].Coord

		path, status, err := RoutePath(g, from, to, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != domain.RouteStatusRail {
			t.Fatalf("expected rail status, got %s", status)
		}
		if len(path) != 3 || path[0] != from || path[1] != first || path[2] != to {
			t.Fatalf("expected path through %v, got %v", first, path)
		}
	}
}
