package repository

import (
	"context"

	"github.com/rail-route-service/internal/domain"
)

// SnapshotRepository хранит снапшот датасета, чтобы не перечитывать источник при старте.
// Снапшоты адресуются отпечатком датасета (FeatureRepository.Fingerprint).
type SnapshotRepository interface {
	// Get возвращает снапшот или nil при промахе. Source в ответе не заполнен.
	Get(ctx context.Context, fingerprint string) (*domain.FeatureCollection, error)

	// Save сохраняет снапшот датасета
	Save(ctx context.Context, fingerprint string, collection *domain.FeatureCollection) error

	// Invalidate удаляет снапшот датасета
	Invalidate(ctx context.Context, fingerprint string) error
}
