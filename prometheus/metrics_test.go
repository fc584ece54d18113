package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	e := echo.New()
	e.Use(MetricsMiddleware())
	e.GET("/clientes/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	counter := HTTPRequestCounter.WithLabelValues("/clientes/:id", http.MethodGet, "404")
	before := testutil.ToFloat64(counter)
	classBefore := testutil.ToFloat64(StatusClassCounter.WithLabelValues("4xx"))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clientes/7", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, classBefore+1, testutil.ToFloat64(StatusClassCounter.WithLabelValues("4xx")))
}

func TestMetricsMiddlewareWritesHandlerErrors(t *testing.T) {
	e := echo.New()
	e.Use(MetricsMiddleware())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestCounter.WithLabelValues("/boom", http.MethodGet, "418")))
}

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(EntityOperationCounter.WithLabelValues("client", "create"))
	RecordEntityOperation("client", "create")
	assert.Equal(t, before+1, testutil.ToFloat64(EntityOperationCounter.WithLabelValues("client", "create")))

	authBefore := testutil.ToFloat64(AuthErrorCounter.WithLabelValues("account_locked"))
	RecordAuthError("account_locked")
	assert.Equal(t, authBefore+1, testutil.ToFloat64(AuthErrorCounter.WithLabelValues("account_locked")))

	TrackDBOperation("query")(time.Now())
	assert.Equal(t, 1, testutil.CollectAndCount(DBOperationDuration))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(http.StatusCreated))
	assert.Equal(t, "3xx", statusClass(http.StatusFound))
	assert.Equal(t, "4xx", statusClass(http.StatusConflict))
	assert.Equal(t, "5xx", statusClass(http.StatusInternalServerError))
}
