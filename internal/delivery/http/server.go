package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/config"
	"github.com/rail-route-service/internal/delivery/http/handler"
	"github.com/rail-route-service/internal/delivery/http/middleware"
	"github.com/rail-route-service/internal/pkg/errors"
	"github.com/rail-route-service/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	healthHandler  *handler.HealthHandler
	stationHandler *handler.StationHandler
	routeHandler   *handler.RouteHandler
	networkHandler *handler.NetworkHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	stationHandler *handler.StationHandler,
	routeHandler *handler.RouteHandler,
	networkHandler *handler.NetworkHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Rail Route Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		healthHandler:  healthHandler,
		stationHandler: stationHandler,
		routeHandler:   routeHandler,
		networkHandler: networkHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App отдаёт fiber.App, нужен для app.Test в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	// Stations
	api.Get("/stations/search", s.stationHandler.Search)
	api.Get("/stations/:id", s.stationHandler.Get)

	// Routes
	api.Post("/routes", s.routeHandler.FindRoute)

	// Network
	api.Get("/network/stats", s.networkHandler.GetStats)
	api.Post("/network/reload", s.networkHandler.Reload)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405 и т.п.) в общем формате ответа
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error: errors.New(httpCode(e.Code), e.Message, e.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("request_id", middleware.RequestIDFromCtx(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return errors.ErrInternalServer.Code
	}
	return errors.ErrInvalidRequest.Code
}
