package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/domain/repository"
	"github.com/rail-route-service/internal/repository/geojson"
)

const snapshotKeyPrefix = "network:snapshot:"

type snapshotRepository struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewSnapshotRepository хранит датасет в кеше в виде GeoJSON
func NewSnapshotRepository(cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) repository.SnapshotRepository {
	return &snapshotRepository{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// SnapshotKey - ключ кеша для отпечатка датасета.
// Путь к файлу или адрес БД в ключ не попадают, только их хеш.
func SnapshotKey(fingerprint string) string {
	return snapshotKeyPrefix + strconv.FormatUint(xxhash.Sum64String(fingerprint), 16)
}

func (r *snapshotRepository) Get(ctx context.Context, fingerprint string) (*domain.FeatureCollection, error) {
	key := SnapshotKey(fingerprint)
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	features, err := geojson.Decode(data)
	if err != nil {
		// битый снапшот не должен ломать загрузку - считаем промахом
		r.logger.Warn("Dropping corrupted snapshot", zap.String("key", key), zap.Error(err))
		_ = r.cache.Delete(ctx, key)
		return nil, nil
	}

	return &domain.FeatureCollection{Features: features}, nil
}

func (r *snapshotRepository) Save(ctx context.Context, fingerprint string, collection *domain.FeatureCollection) error {
	data, err := geojson.Encode(collection)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	key := SnapshotKey(fingerprint)
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		return err
	}

	r.logger.Info("Snapshot saved",
		zap.String("source", collection.Source),
		zap.String("key", key),
		zap.Int("features", len(collection.Features)),
		zap.Int("bytes", len(data)))
	return nil
}

func (r *snapshotRepository) Invalidate(ctx context.Context, fingerprint string) error {
	return r.cache.Delete(ctx, SnapshotKey(fingerprint))
}
