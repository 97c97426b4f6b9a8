package main

// @title Rail Route Service API
// @version 1.0.0
// @description Сервис маршрутов по железнодорожной сети. Строит граф из станций и путей OpenStreetMap (GeoJSON, OSM PBF или PostGIS) и ищет кратчайший путь между станциями.
// @description
// @description Основные возможности:
// @description - Поиск станций по названию
// @description - Маршрут между двумя станциями с промежуточными остановками
// @description - Прямая линия, если станции не связаны путями
// @description - Статистика и перезагрузка датасета

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/rail-route-service/docs"
	"github.com/rail-route-service/internal/config"
	httpDelivery "github.com/rail-route-service/internal/delivery/http"
	"github.com/rail-route-service/internal/delivery/http/handler"
	"github.com/rail-route-service/internal/domain/repository"
	"github.com/rail-route-service/internal/pkg/logger"
	"github.com/rail-route-service/internal/repository/cache"
	"github.com/rail-route-service/internal/repository/dataset"
	"github.com/rail-route-service/internal/usecase"
)

// initialLoadTimeout - сколько ждать первой загрузки датасета (PBF целой страны читается минутами)
const initialLoadTimeout = 10 * time.Minute

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Rail Route Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset_source", cfg.Dataset.Source),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Dataset source
	featureRepo, closeDataset, err := dataset.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to open dataset source", zap.Error(err))
	}
	defer func() {
		if err := closeDataset(); err != nil {
			log.Error("Failed to close dataset source", zap.Error(err))
		}
	}()

	// 4. Redis snapshot cache (опционально)
	var (
		snapshotRepo repository.SnapshotRepository
		cacheCheck   handler.HealthChecker
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		snapshotRepo = cache.NewSnapshotRepository(cache.NewCacheRepository(redisClient), cfg.Cache.NetworkCacheTTL, log)
		cacheCheck = redisClient
	}

	// 5. Initialize Use Cases
	engine := cfg.RoutingEngine()
	networkUC := usecase.NewNetworkUseCase(featureRepo, snapshotRepo, engine, log)
	routeUC := usecase.NewRouteUseCase(networkUC, engine, log)

	// 6. Initialize HTTP Handlers and Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewHealthHandler(networkUC, cacheCheck),
		handler.NewStationHandler(routeUC, log),
		handler.NewRouteHandler(routeUC, log),
		handler.NewNetworkHandler(networkUC, log),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 7. Первая загрузка сети в фоне: пока она идёт, /health отвечает 503
	go func() {
		loadCtx, loadCancel := context.WithTimeout(ctx, initialLoadTimeout)
		defer loadCancel()

		if _, err := networkUC.Load(loadCtx); err != nil {
			log.Error("Initial network load failed, use POST /api/v1/network/reload to retry", zap.Error(err))
		}
	}()

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
