package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rail-route-service/internal/config"
	"github.com/rail-route-service/internal/delivery/http/handler"
	"github.com/rail-route-service/internal/routing"
	"github.com/rail-route-service/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := zap.NewNop()

	networks := usecase.NewNetworkUseCase(nil, nil, routing.DefaultConfig(), logger)
	routes := usecase.NewRouteUseCase(networks, routing.DefaultConfig(), logger)

	return NewServer(
		&config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: 0}},
		logger,
		handler.NewHealthHandler(networks, nil),
		handler.NewStationHandler(routes, logger),
		handler.NewRouteHandler(routes, logger),
		handler.NewNetworkHandler(networks, logger),
	)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestServer_RequestIDIsPropagated(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
	// сеть ещё не загружена
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_RouteBeforeLoad(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/network/stats", nil)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
