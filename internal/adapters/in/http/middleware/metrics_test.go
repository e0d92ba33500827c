package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsRequestWithNumericStatusLabel(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/api/v1/orders/:orderId", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	count := testutil.ToFloat64(
		httpRequests.WithLabelValues(http.MethodGet, "/api/v1/orders/:orderId", "200"))
	require.Equal(t, float64(1), count)
}

func TestMetrics_HandlerErrorUsesErrorStatusCode(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/api/v1/batches/:batchId", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "batch not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/batches/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	count := testutil.ToFloat64(
		httpRequests.WithLabelValues(http.MethodGet, "/api/v1/batches/:batchId", "404"))
	require.Equal(t, float64(1), count)
}
