package geojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-route-service/internal/domain"
)

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "node/101",
     "geometry": {"type": "Point", "coordinates": [106.8307, -6.1767]},
     "properties": {"name": "Gambir", "railway": "station", "ele": 9, "operator": null}},
    {"type": "Feature", "id": 7,
     "geometry": {"type": "LineString", "coordinates": [[106.83, -6.17], [106.84, -6.18]]},
     "properties": {"railway": "rail", "electrified": true}},
    {"type": "Feature", "id": "way/9",
     "geometry": {"type": "MultiLineString", "coordinates": [
       [[106.80, -6.20], [106.81, -6.21]],
       [[106.82, -6.22], [106.83, -6.23]]
     ]},
     "properties": {"railway": "light_rail"}},
    {"type": "Feature",
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]},
     "properties": {"landuse": "railway"}}
  ]
}`

func TestDecode(t *testing.T) {
	features, err := Decode([]byte(sampleCollection))
	require.NoError(t, err)
	require.Len(t, features, 4)

	station := features[0]
	assert.Equal(t, "node/101", station.ID)
	assert.Equal(t, domain.GeometryPoint, station.Geometry)
	assert.Equal(t, []domain.Point{{Lat: -6.1767, Lon: 106.8307}}, station.Coordinates)
	assert.Equal(t, "Gambir", station.Tag("name"))
	assert.Equal(t, "9", station.Tag("ele"))
	_, hasOperator := station.Properties["operator"]
	assert.False(t, hasOperator)

	line := features[1]
	assert.Equal(t, "7", line.ID)
	assert.Equal(t, domain.GeometryLineString, line.Geometry)
	assert.Equal(t, domain.Point{Lat: -6.17, Lon: 106.83}, line.Coordinates[0])
	assert.Equal(t, "true", line.Tag("electrified"))

	assert.Equal(t, "way/9#0", features[2].ID)
	assert.Equal(t, "way/9#1", features[3].ID)
	assert.Equal(t, "light_rail", features[3].Tag("railway"))
	assert.Equal(t, domain.Point{Lat: -6.22, Lon: 106.82}, features[3].Coordinates[0])
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`{"type": "FeatureCollection", "features": [`))
	assert.Error(t, err)
}

func TestEncode_PreservesFeatures(t *testing.T) {
	in := &domain.FeatureCollection{
		Source: SourceName,
		Features: []domain.Feature{
			{
				ID:          "node/1",
				Geometry:    domain.GeometryPoint,
				Coordinates: []domain.Point{{Lat: -6.2, Lon: 106.8}},
				Properties:  map[string]string{"name": "Manggarai", "railway": "station"},
			},
			{
				ID:          "way/2",
				Geometry:    domain.GeometryLineString,
				Coordinates: []domain.Point{{Lat: -6.2, Lon: 106.8}, {Lat: -6.21, Lon: 106.81}},
				Properties:  map[string]string{"railway": "rail"},
			},
			{Geometry: domain.GeometryPoint},
		},
	}

	data, err := Encode(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `[106.8,-6.2]`)

	out, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in.Features[:2], out)
}
