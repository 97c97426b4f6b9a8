package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rail-route-service/internal/config"
	"github.com/rail-route-service/internal/pkg/logger"
	"github.com/rail-route-service/internal/repository/cache"
	"github.com/rail-route-service/internal/repository/dataset"
	redisRepo "github.com/rail-route-service/internal/repository/redis"
	"github.com/rail-route-service/internal/usecase"
	"github.com/rail-route-service/internal/worker"
	"github.com/rail-route-service/internal/worker/route"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout),
		zap.String("dataset_source", cfg.Dataset.Source))

	// 3. Connect to Redis (снапшоты сети и стримы через один клиент)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	featureRepo, closeDataset, err := dataset.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to open dataset source", zap.Error(err))
	}
	defer func() {
		if err := closeDataset(); err != nil {
			log.Error("Failed to close dataset source", zap.Error(err))
		}
	}()

	snapshotRepo := cache.NewSnapshotRepository(cache.NewCacheRepository(redisClient), cfg.Cache.NetworkCacheTTL, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)

	// 5. Initialize use cases and load the network before consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := cfg.RoutingEngine()
	networkUC := usecase.NewNetworkUseCase(featureRepo, snapshotRepo, engine, log)
	if _, err := networkUC.Load(ctx); err != nil {
		log.Fatal("Failed to load railway network", zap.Error(err))
	}
	routeUC := usecase.NewRouteUseCase(networkUC, engine, log)

	// 6. Initialize workers
	routeWorker := route.NewRouteWorker(
		streamRepo,
		routeUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
		log,
	)

	workerManager := worker.NewWorkerManager(worker.DefaultShutdownTimeout, log)
	workerManager.Register(routeWorker)

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop сначала даёт дочитать текущий батч, затем отменяем контекст
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
