package route

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/domain"
	"github.com/rail-route-service/internal/domain/repository"
	"github.com/rail-route-service/internal/pkg/errors"
	"github.com/rail-route-service/internal/pkg/validator"
	"github.com/rail-route-service/internal/usecase/dto"
	"github.com/rail-route-service/internal/worker"
)

const (
	WorkerName = "route-finder"

	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorBackoff    = time.Second
	retryBackoff    = 50 * time.Millisecond

	// StaleClaimIdle - через сколько неподтверждённое сообщение забирается на повторную обработку
	StaleClaimIdle = time.Minute
)

// RouteFinder строит маршрут (usecase.RouteUseCase)
type RouteFinder interface {
	FindRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error)
}

// RouteWorker читает stream:route:request и публикует результаты в stream:route:done
type RouteWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	routes       RouteFinder
	consumerName string
	batchSize    int
	maxRetries   int
}

// NewRouteWorker создает новый RouteWorker
func NewRouteWorker(
	streamRepo repository.StreamRepository,
	routes RouteFinder,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	logger *zap.Logger,
) *RouteWorker {
	hostname, _ := os.Hostname()

	if batchSize <= 0 {
		batchSize = 20
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}

	return &RouteWorker{
		BaseWorker:   worker.NewBaseWorker(WorkerName, consumerGroup, logger),
		streamRepo:   streamRepo,
		routes:       routes,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}
}

// ConsumerName - имя консьюмера внутри группы
func (w *RouteWorker) ConsumerName() string {
	return w.consumerName
}

// Start запускает воркер
func (w *RouteWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RouteWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteRequest, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorBackoff)
			continue
		}

		if processed == 0 {
			w.Pause(ctx, emptyQueueSleep)
		}
	}
}

// ProcessBatch читает и обрабатывает одну пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *RouteWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.nextBatch(ctx)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	acked := make([]string, 0, len(messages))
	published := 0

	for _, msg := range messages {
		// прерванный батч не подтверждаем, сообщения останутся в PEL
		if ctx.Err() != nil {
			break
		}

		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			acked = append(acked, msg.ID)
			continue
		}

		done := w.handle(ctx, event)
		if ctx.Err() != nil {
			break
		}

		if err := w.publish(ctx, done); err != nil {
			logger.Error("Failed to publish route result",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			// не ACK: сообщение останется в PEL, через StaleClaimIdle его заберёт nextBatch
			continue
		}
		published++
		acked = append(acked, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRouteRequest, w.ConsumerGroup(), acked); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("published", published),
		zap.Int("acked", len(acked)))

	return len(messages), nil
}

// nextBatch сначала забирает зависшие в PEL сообщения группы, затем читает новые.
// Ошибка XAUTOCLAIM не мешает читать новые сообщения.
func (w *RouteWorker) nextBatch(ctx context.Context) ([]domain.StreamMessage, error) {
	stale, err := w.streamRepo.ClaimStale(
		ctx,
		domain.StreamRouteRequest,
		w.ConsumerGroup(),
		w.consumerName,
		StaleClaimIdle,
		w.batchSize,
	)
	switch {
	case err != nil && ctx.Err() != nil:
		return nil, ctx.Err()
	case err != nil:
		w.Logger().Warn("Failed to claim stale messages", zap.Error(err))
	case len(stale) > 0:
		w.Logger().Info("Reprocessing stale messages", zap.Int("count", len(stale)))
		return stale, nil
	}

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRouteRequest,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

// handle строит маршрут для события. Ошибки попадают в RouteDoneEvent.
func (w *RouteWorker) handle(ctx context.Context, event *domain.RouteRequestEvent) *domain.RouteDoneEvent {
	done := &domain.RouteDoneEvent{RequestID: event.RequestID}
	if !event.Validate() {
		setError(done, errors.ErrInvalidRequest)
		return done
	}

	req := dto.RouteRequest{
		FromStationID: event.FromStationID,
		ToStationID:   event.ToStationID,
	}
	if err := validator.Validate(&req); err != nil {
		setError(done, err)
		return done
	}

	resp, err := w.routes.FindRoute(ctx, req)
	if err != nil {
		w.Logger().Debug("Route request failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		setError(done, err)
		return done
	}

	done.Route = &domain.RouteSummary{
		DistanceKm:      resp.DistanceKm,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		StraightLine:    resp.StraightLine,
		FallbackReason:  resp.FallbackReason,
		Path:            resp.Path,
		StationIDs: lo.Map(resp.StationsAlong, func(s dto.StationAlongDTO, _ int) string {
			return s.ID
		}),
	}
	return done
}

// publish отправляет результат, повторяя до maxRetries раз
func (w *RouteWorker) publish(ctx context.Context, done *domain.RouteDoneEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamRouteDone, done); err == nil {
			return nil
		}
		if attempt < w.maxRetries && !w.Pause(ctx, retryBackoff*time.Duration(attempt)) {
			break
		}
	}
	return err
}

func setError(done *domain.RouteDoneEvent, err error) {
	if appErr, ok := errors.As(err); ok {
		done.ErrorCode = appErr.Code
		done.Error = appErr.Message
		return
	}
	done.ErrorCode = errors.ErrInternalServer.Code
	done.Error = err.Error()
}

// parseMessage парсит сообщение из стрима в RouteRequestEvent
func parseMessage(msg domain.StreamMessage) (*domain.RouteRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.RouteRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("missing request_id")
	}

	return &event, nil
}
