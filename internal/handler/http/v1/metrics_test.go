package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shenikar/santiago_crash_dashboard/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := observability.NewMetricsForTesting()
	router := gin.New()
	router.Use(MetricsMiddleware(metrics))
	router.GET("/api/v1/items/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	makeRequest(router, "GET", "/api/v1/items/1", nil)
	makeRequest(router, "GET", "/api/v1/items/2", nil)
	makeRequest(router, "GET", "/nowhere", nil)

	assert.Equal(t, 2.0, counterValue(t, metrics.HTTPRequests.WithLabelValues("GET", "/api/v1/items/:id", "200")))
	assert.Equal(t, 1.0, counterValue(t, metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
