package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbykyun/daa-visual/internal/metrics"
	"github.com/abbykyun/daa-visual/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_IgnoresClientValue(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	r := gin.New()
	r.Use(middleware.RequestID(log))
	var seen, client string
	r.GET("/x", func(c *gin.Context) {
		seen = c.GetString(middleware.RequestIDKey)
		client = c.GetString(middleware.ClientRequestIDKey)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
	req.Header.Set(middleware.RequestIDHeader, "client-chosen")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
	assert.NotEqual(t, "client-chosen", seen)
	assert.Equal(t, "client-chosen", client)
}

func TestLogger_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(middleware.RequestID(log), middleware.Logger(log))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), w.Header().Get(middleware.RequestIDHeader))
}

func TestMetrics_CountsRoutePattern(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, p := range []string{"/items/1", "/items/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, http.NoBody))
	}
	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	unmatched := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before = testutil.ToFloat64(unmatched)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))
	assert.Equal(t, before+1, testutil.ToFloat64(unmatched))
}

func TestMetrics_StreamsSkipLatency(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Metrics())
	r.GET("/stream", func(c *gin.Context) { c.Status(http.StatusSwitchingProtocols) })

	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/stream", "101")
	before := testutil.ToFloat64(counter)
	series := testutil.CollectAndCount(metrics.RequestDuration)

	req := httptest.NewRequest(http.MethodGet, "/stream", http.NoBody)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, series, testutil.CollectAndCount(metrics.RequestDuration))
}
