package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/abbykyun/daa-visual/internal/middleware"
	"github.com/abbykyun/daa-visual/internal/session"
	"github.com/abbykyun/daa-visual/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log              *logrus.Logger
	Workspace        *session.Workspace
	CORSOrigins      []string
	PlaybackInterval time.Duration
	RandomNodes      int
	Version          string
}

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(middleware.Logger(deps.Log))
	r.Use(gin.Recovery())
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			MaxAge:           1 * time.Hour,
			AllowCredentials: false,
		}))
	}
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Workspace, deps.Version)
	graph := NewGraphHandler(deps.Workspace, log, deps.RandomNodes)
	runs := NewRunHandler(deps.Workspace, log)

	api.GET("/health", health.Liveness)

	// Graph editing.
	api.GET("/graph", graph.Get)
	api.GET("/graph/stats", graph.Stats)
	api.DELETE("/graph", graph.Clear)
	api.POST("/graph/nodes", graph.AddNode)
	api.DELETE("/graph/nodes/:id", graph.RemoveNode)
	api.POST("/graph/edges", graph.AddEdge)
	api.PUT("/graph/directed", graph.SetDirected)
	api.POST("/graph/random", graph.Random)
	api.POST("/graph/preset", graph.Preset)

	// Runs.
	api.POST("/runs", runs.Create)
	api.GET("/runs/current", runs.Current)
	api.DELETE("/runs/current", runs.Reset)
	api.GET("/runs/current/steps/:index", runs.Step)
	api.GET("/runs/current/table", runs.Table)

	// Live playback.
	api.GET("/ws/playback", wsHandler(ctx, deps))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}

// wsHandler upgrades the request and streams playback of the run that is
// current at connect time.
func wsHandler(appCtx context.Context, deps *RouterDeps) gin.HandlerFunc {
	patterns := originPatterns(deps.CORSOrigins)

	return func(c *gin.Context) {
		conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
			OriginPatterns: patterns,
		})
		if err != nil {
			deps.Log.WithError(err).Error("websocket accept failed")
			return
		}

		// Cancel when either the server shuts down or the request ends.
		wsCtx, wsCancel := context.WithCancel(appCtx)
		defer wsCancel()
		go func() {
			select {
			case <-c.Request.Context().Done():
				wsCancel()
			case <-wsCtx.Done():
			}
		}()

		run, _ := deps.Workspace.Current()
		if err := ws.Serve(wsCtx, conn, run, deps.PlaybackInterval, deps.Log); err != nil {
			deps.Log.WithError(err).Debug("playback stream ended")
		}
	}
}

// originPatterns turns CORS origins into the host patterns websocket.Accept
// matches against.
func originPatterns(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			out = append(out, u.Host)
		}
	}

	return out
}
