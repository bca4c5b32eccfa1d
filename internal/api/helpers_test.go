package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/internal/api"
	"github.com/abbykyun/daa-visual/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// newTestRouter returns the full router over a directed workspace with
// sequential IDs (n1.., e1..).
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	log := testLogger()
	ws := session.New(log,
		session.WithDirected(true),
		session.WithIDGenerator(core.NewSequentialIDs()),
	)

	return api.NewRouter(ctx, &api.RouterDeps{
		Log:              log,
		Workspace:        ws,
		CORSOrigins:      []string{"http://localhost:5173"},
		PlaybackInterval: time.Millisecond,
		RandomNodes:      6,
		Version:          "test",
	})
}

// doRequest performs an HTTP request against the router and returns the recorder.
func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

// seedChain builds A→B(2), B→C(3), A→C(10) through the API.
func seedChain(t *testing.T, h http.Handler) {
	t.Helper()
	for _, l := range []string{"A", "B", "C"} {
		w := doRequest(h, http.MethodPost, "/api/v1/graph/nodes", `{"label":"`+l+`"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	for _, e := range []string{
		`{"from":"n1","to":"n2","weight":2}`,
		`{"from":"n2","to":"n3","weight":3}`,
		`{"from":"n1","to":"n3","weight":10}`,
	} {
		w := doRequest(h, http.MethodPost, "/api/v1/graph/edges", e)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
}
