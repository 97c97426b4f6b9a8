package geojson

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rail-route-service/internal/domain"
)

// Decode разбирает GeoJSON FeatureCollection в нейтральные объекты.
// MultiLineString разбивается на отдельные линии, прочие геометрии пропускаются.
// GeoJSON хранит координаты как [lon, lat], домен - как lat/lon.
func Decode(data []byte) ([]domain.Feature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geojson: %w", err)
	}

	features := make([]domain.Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}

		id := featureID(f.ID)
		props := stringProperties(f.Properties)

		switch g := f.Geometry.(type) {
		case orb.Point:
			features = append(features, domain.Feature{
				ID:          id,
				Geometry:    domain.GeometryPoint,
				Coordinates: []domain.Point{fromOrb(g)},
				Properties:  props,
			})
		case orb.LineString:
			features = append(features, lineFeature(id, g, props))
		case orb.MultiLineString:
			for i, ls := range g {
				partID := id
				if id != "" && len(g) > 1 {
					partID = fmt.Sprintf("%s#%d", id, i)
				}
				features = append(features, lineFeature(partID, ls, props))
			}
		}
	}

	return features, nil
}

// Encode сериализует коллекцию обратно в GeoJSON
func Encode(collection *domain.FeatureCollection) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i := range collection.Features {
		f := &collection.Features[i]

		var geom orb.Geometry
		switch f.Geometry {
		case domain.GeometryPoint:
			if len(f.Coordinates) == 0 {
				continue
			}
			geom = toOrb(f.Coordinates[0])
		case domain.GeometryLineString:
			ls := make(orb.LineString, len(f.Coordinates))
			for j, p := range f.Coordinates {
				ls[j] = toOrb(p)
			}
			geom = ls
		default:
			continue
		}

		gf := geojson.NewFeature(geom)
		if f.ID != "" {
			gf.ID = f.ID
		}
		for k, v := range f.Properties {
			gf.Properties[k] = v
		}
		fc.Append(gf)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode geojson: %w", err)
	}
	return data, nil
}

func lineFeature(id string, ls orb.LineString, props map[string]string) domain.Feature {
	coords := make([]domain.Point, len(ls))
	for i, p := range ls {
		coords[i] = fromOrb(p)
	}
	return domain.Feature{
		ID:          id,
		Geometry:    domain.GeometryLineString,
		Coordinates: coords,
		Properties:  props,
	}
}

func fromOrb(p orb.Point) domain.Point {
	return domain.Point{Lat: p.Lat(), Lon: p.Lon()}
}

func toOrb(p domain.Point) orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// featureID приводит id GeoJSON (строка или число) к строке
func featureID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// stringProperties переводит свойства в строки; null пропускается
func stringProperties(props geojson.Properties) map[string]string {
	result := make(map[string]string, len(props))
	for k, v := range props {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			result[k] = val
		case float64:
			result[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			result[k] = fmt.Sprint(val)
		}
	}
	return result
}
