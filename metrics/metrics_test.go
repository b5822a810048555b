package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	collector := NewCollector()

	router := gin.New()
	router.Use(collector.Middleware())
	router.GET("/posts/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", collector.Handler())

	req := httptest.NewRequest("GET", "/posts/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	collector.RecordPremiumDenial()
	collector.RecordVisibilityCoercion()

	req = httptest.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `blog_http_requests_total{method="GET",route="/posts/:id",status="200"} 1`)
	assert.Contains(t, body, "blog_premium_read_denials_total 1")
	assert.Contains(t, body, "blog_visibility_coercions_total 1")
}
