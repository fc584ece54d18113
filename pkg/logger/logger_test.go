package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextFallsBackToGlobal(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, FromContext(c))
	assert.Same(t, GetLogger(), FromContext(c))
}

func TestMiddlewareLogsRequestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	e := echo.New()
	e.Use(Middleware())
	e.GET("/ping", func(c echo.Context) error {
		FromContext(c).Info("inside handler")
		return c.String(http.StatusTeapot, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "inside handler", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "HTTP Request", entries[1].Message)
	assert.EqualValues(t, http.StatusTeapot, entries[1].ContextMap()["status"])
}

func TestInitLogger(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, InitLogger(&LogConfig{Level: "debug", Environment: "production", ServiceName: "clients"}))
	assert.True(t, GetLogger().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(&LogConfig{Level: "warn", Environment: "development", ServiceName: "clients"}))
	assert.False(t, GetLogger().Core().Enabled(zap.InfoLevel))
}
