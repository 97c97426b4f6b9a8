package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/domain/repository"
	"github.com/rail-route-service/internal/pkg/errors"
	"github.com/rail-route-service/internal/routing"
	"github.com/rail-route-service/internal/usecase/dto"
)

// NetworkUseCase владеет текущим снапшотом железнодорожной сети.
// Снапшот неизменяем, перезагрузка подменяет его целиком.
type NetworkUseCase struct {
	featureRepo  repository.FeatureRepository
	snapshotRepo repository.SnapshotRepository
	cfg          routing.Config
	logger       *zap.Logger

	mu      *xsync.RBMutex
	network *routing.Network

	// loadMu не даёт двум перезагрузкам строить граф одновременно
	loadMu sync.Mutex
}

// NewNetworkUseCase создает новый экземпляр NetworkUseCase. snapshotRepo может быть nil.
func NewNetworkUseCase(
	featureRepo repository.FeatureRepository,
	snapshotRepo repository.SnapshotRepository,
	cfg routing.Config,
	logger *zap.Logger,
) *NetworkUseCase {
	return &NetworkUseCase{
		featureRepo:  featureRepo,
		snapshotRepo: snapshotRepo,
		cfg:          cfg.WithDefaults(),
		logger:       logger,
		mu:           xsync.NewRBMutex(),
	}
}

// Load строит сеть, используя снапшот из кеша когда возможно
func (uc *NetworkUseCase) Load(ctx context.Context) (*dto.ReloadResponse, error) {
	return uc.load(ctx, true)
}

// Reload сбрасывает снапшот датасета, перечитывает источник и сохраняет новый снапшот.
// Если источник недоступен, следующий старт тоже пойдёт в источник, а не в устаревший кеш.
func (uc *NetworkUseCase) Reload(ctx context.Context) (*dto.ReloadResponse, error) {
	uc.logger.Info("Reloading railway network", zap.String("source", uc.featureRepo.Source()))

	if uc.snapshotRepo != nil {
		if err := uc.snapshotRepo.Invalidate(ctx, uc.featureRepo.Fingerprint()); err != nil {
			uc.logger.Warn("Failed to invalidate snapshot", zap.Error(err))
		}
	}
	return uc.load(ctx, false)
}

func (uc *NetworkUseCase) load(ctx context.Context, useCache bool) (*dto.ReloadResponse, error) {
	uc.loadMu.Lock()
	defer uc.loadMu.Unlock()

	start := time.Now()

	fc, fromCache, err := uc.fetch(ctx, useCache)
	if err != nil {
		return nil, err
	}

	network := routing.NewNetwork(fc, uc.cfg)

	uc.mu.Lock()
	uc.network = network
	uc.mu.Unlock()

	took := time.Since(start)
	stats := network.Stats.Network
	uc.logger.Info("Railway network ready",
		zap.String("source", network.Source),
		zap.Bool("from_cache", fromCache),
		zap.Int("stations", stats.ConnectedStations),
		zap.Int("segments", stats.Segments),
		zap.Int("nodes", stats.Nodes),
		zap.Int("edges", stats.Edges),
		zap.Int("snap_links", stats.SnapLinks),
		zap.Int("components", stats.Components),
		zap.Duration("took", took))

	return &dto.ReloadResponse{
		Source:     network.Source,
		Stations:   stats.ConnectedStations,
		Nodes:      stats.Nodes,
		Edges:      stats.Edges,
		Components: stats.Components,
		FromCache:  fromCache,
		TookMs:     float64(took.Microseconds()) / 1000,
	}, nil
}

// fetch возвращает датасет из кеша или источника. Ошибки кеша не фатальны.
func (uc *NetworkUseCase) fetch(ctx context.Context, useCache bool) (*domain.FeatureCollection, bool, error) {
	source := uc.featureRepo.Source()
	fingerprint := uc.featureRepo.Fingerprint()

	if uc.snapshotRepo != nil && useCache {
		cached, err := uc.snapshotRepo.Get(ctx, fingerprint)
		if err != nil {
			uc.logger.Warn("Failed to get snapshot from cache", zap.Error(err))
		} else if cached != nil {
			uc.logger.Debug("Dataset fetched from cache", zap.String("dataset", fingerprint))
			cached.Source = source
			return cached, true, nil
		}
	}

	fc, err := uc.featureRepo.LoadFeatures(ctx)
	if err != nil {
		uc.logger.Error("Failed to load dataset", zap.String("source", source), zap.Error(err))
		return nil, false, fmt.Errorf("%w: %w", errors.ErrDatasetError, err)
	}
	if fc.Source == "" {
		fc.Source = source
	}

	if uc.snapshotRepo != nil {
		if err := uc.snapshotRepo.Save(ctx, fingerprint, fc); err != nil {
			// Не возвращаем ошибку, т.к. данные уже получены
			uc.logger.Warn("Failed to cache snapshot", zap.Error(err))
		}
	}

	return fc, false, nil
}

// Network возвращает текущий снапшот сети
func (uc *NetworkUseCase) Network() (*routing.Network, error) {
	t := uc.mu.RLock()
	n := uc.network
	uc.mu.RUnlock(t)

	if n == nil {
		return nil, errors.ErrNetworkNotLoaded
	}
	return n, nil
}

// Stats возвращает статистику датасета и графа
func (uc *NetworkUseCase) Stats(ctx context.Context) (*domain.DatasetStats, error) {
	n, err := uc.Network()
	if err != nil {
		return nil, err
	}
	stats := n.Stats
	return &stats, nil
}
