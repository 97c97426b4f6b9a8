package repository

import (
	"context"

	"github.com/rail-route-service/internal/domain"
)

// FeatureRepository загружает датасет железнодорожной сети (станции и пути)
type FeatureRepository interface {
	// LoadFeatures возвращает все объекты датасета в нейтральном формате
	LoadFeatures(ctx context.Context) (*domain.FeatureCollection, error)

	// Source возвращает имя источника (geojson, osmpbf, postgres)
	Source() string

	// Fingerprint однозначно описывает датасет (см. domain.DatasetFingerprint),
	// по нему строится ключ снапшота в кеше
	Fingerprint() string
}
