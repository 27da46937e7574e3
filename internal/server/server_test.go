package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/gke-demo/apis/common"
	"github.com/example/gke-demo/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:        config.DefaultPort,
		Environment: config.DefaultEnvironment,
		LogLevel:    config.DefaultLogLevel,
	}
}

func TestNew_RoutesWired(t *testing.T) {
	srv := New(testConfig())
	require.NotNil(t, srv, "Expected server instance")

	tests := []struct {
		name string
		path string
	}{
		{name: "welcome", path: "/"},
		{name: "health", path: "/health"},
		{name: "info", path: "/api/info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err, "Expected request to be dispatched")
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected registered route to answer 200")
		})
	}
}

func TestNew_UnknownRouteReturnsErrorResponse(t *testing.T) {
	srv := New(testConfig())

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	require.NoError(t, err, "Expected request to be dispatched")
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "Expected 404 for unknown path")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Expected body to be readable")

	var errResp common.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Expected error body to be valid JSON")
	assert.True(t, errResp.Error, "Expected error flag to be set")
	assert.NotEmpty(t, errResp.Message, "Expected an error message")
}

func TestNew_RecoverMiddlewareHandlesPanics(t *testing.T) {
	srv := New(testConfig())

	// Register an extra route that panics to prove the middleware chain
	// converts panics into a 500 error response instead of crashing.
	srv.app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err, "Expected request to be dispatched")
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, "Expected panic to surface as 500")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Expected body to be readable")

	var errResp common.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Expected error body to be valid JSON")
	assert.True(t, errResp.Error, "Expected error flag to be set")
}
