package geojson

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/domain/repository"
)

// SourceName - имя источника для логов и ключей кеша
const SourceName = "geojson"

type featureRepository struct {
	path   string
	logger *zap.Logger
}

// NewFeatureRepository читает датасет из файла GeoJSON FeatureCollection
func NewFeatureRepository(path string, logger *zap.Logger) repository.FeatureRepository {
	return &featureRepository{
		path:   path,
		logger: logger,
	}
}

func (r *featureRepository) Source() string {
	return SourceName
}

// Fingerprint - GeoJSON хранит все объекты, фильтр типов применяется позже в движке
func (r *featureRepository) Fingerprint() string {
	return domain.DatasetFingerprint(SourceName, filepath.Clean(r.path), nil)
}

func (r *featureRepository) LoadFeatures(ctx context.Context) (*domain.FeatureCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error("Failed to read dataset file", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("failed to read dataset %s: %w", r.path, err)
	}

	features, err := Decode(data)
	if err != nil {
		r.logger.Error("Failed to decode dataset", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("dataset %s: %w", r.path, err)
	}

	r.logger.Info("Dataset loaded",
		zap.String("source", SourceName),
		zap.String("path", r.path),
		zap.Int("features", len(features)),
		zap.Int("bytes", len(data)))

	return &domain.FeatureCollection{Source: SourceName, Features: features}, nil
}
