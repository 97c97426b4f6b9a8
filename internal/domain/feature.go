package domain

import (
	"slices"
	"strings"
)

// GeometryType - тип геометрии исходного объекта
type GeometryType string

const (
	GeometryPoint      GeometryType = "Point"
	GeometryLineString GeometryType = "LineString"
)

// Feature - объект датасета (станция или участок пути) в нейтральном формате.
// Coordinates всегда в порядке lat/lon, независимо от источника.
type Feature struct {
	ID          string            `json:"id"`
	Geometry    GeometryType      `json:"geometry"`
	Coordinates []Point           `json:"coordinates"`
	Properties  map[string]string `json:"properties"`
}

// Tag возвращает значение свойства или пустую строку
func (f *Feature) Tag(key string) string {
	if f.Properties == nil {
		return ""
	}
	return f.Properties[key]
}

// FeatureCollection - весь загруженный датасет
type FeatureCollection struct {
	Source   string    `json:"source"`
	Features []Feature `json:"features"`
}

// DatasetFingerprint описывает конкретный датасет: источник, расположение
// (файл или БД) и фильтр типов путей. Порядок railwayTypes не важен.
func DatasetFingerprint(source, location string, railwayTypes []string) string {
	types := slices.Clone(railwayTypes)
	slices.Sort(types)
	types = slices.Compact(types)
	return source + ":" + location + "|" + strings.Join(types, ",")
}
