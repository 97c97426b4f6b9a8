package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-route-service/internal/domain"
)

func TestExtractSegments(t *testing.T) {
	line := meridianLine(-6.2, 106.8, 1, 5)
	tiny := meridianLine(-6.2, 106.9, 0.002, 2)

	withAtID := lineFeature("", "subway", line)
	withAtID.Properties["@id"] = "way/77"

	features := []domain.Feature{
		lineFeature("way/1", "rail", line),
		lineFeature("way/2", "highway", line),
		lineFeature("way/3", "tram", line[:1]),
		lineFeature("way/4", "rail", tiny),
		withAtID,
		lineFeature("", "narrow_gauge", line),
		{ID: "node/1", Geometry: domain.GeometryPoint, Coordinates: line[:1], Properties: map[string]string{"railway": "rail"}},
	}

	segments := ExtractSegments(features, DefaultConfig())
	require.Len(t, segments, 3)

	assert.Equal(t, "way/1", segments[0].ID)
	assert.InDelta(t, 1.0, segments[0].LengthKm, 1e-9)
	assert.Equal(t, "way/77", segments[1].ID)
	// index counts every railway line, including the dropped short one
	assert.Equal(t, "segment_3", segments[2].ID)
}

func TestExtractSegments_CustomTypes(t *testing.T) {
	line := meridianLine(-6.2, 106.8, 1, 5)
	features := []domain.Feature{
		lineFeature("a", "rail", line),
		lineFeature("b", "funicular", line),
	}

	segments := ExtractSegments(features, Config{RailwayTypes: []string{"funicular"}})
	require.Len(t, segments, 1)
	assert.Equal(t, "b", segments[0].ID)
}

func TestExtractSegments_Empty(t *testing.T) {
	assert.Empty(t, ExtractSegments(nil, DefaultConfig()))
	g := BuildGraph(ExtractSegments(nil, DefaultConfig()), DefaultConfig())
	assert.True(t, g.Empty())
}

func TestExtractStations(t *testing.T) {
	p := domain.Point{Lat: -6.1754, Lon: 106.8272}
	features := []domain.Feature{
		{ID: "node/1", Geometry: domain.GeometryPoint, Coordinates: []domain.Point{p},
			Properties: map[string]string{"name": "Gambir", "railway": "station", "operator": "KAI"}},
		{Geometry: domain.GeometryPoint, Coordinates: []domain.Point{p},
			Properties: map[string]string{"name": "Juanda", "@id": "node/2", "railway": "halt"}},
		{Geometry: domain.GeometryPoint, Coordinates: []domain.Point{p},
			Properties: map[string]string{"name": "Sawah Besar"}},
		{ID: "node/4", Geometry: domain.GeometryPoint, Coordinates: []domain.Point{p},
			Properties: map[string]string{"railway": "station"}},
		lineFeature("way/1", "rail", meridianLine(0, 0, 1, 2)),
	}

	stations := ExtractStations(features)
	require.Len(t, stations, 3)

	assert.Equal(t, "node/1", stations[0].ID)
	assert.Equal(t, "Gambir", stations[0].Name)
	assert.Equal(t, "KAI", stations[0].Operator)
	assert.Equal(t, p, stations[0].Location)
	assert.Equal(t, "node/2", stations[1].ID)
	assert.Equal(t, "halt", stations[1].RailType)
	assert.Equal(t, "station_2", stations[2].ID)
}
