// Package api provides the HTTP handlers of the visualizer backend.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abbykyun/daa-visual/internal/session"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	ws        *session.Workspace
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(ws *session.Workspace, version string) *HealthHandler {
	return &HealthHandler{ws: ws, version: version, startTime: time.Now()}
}

type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	st := h.ws.Stats()
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Nodes:         st.NodeCount,
		Edges:         st.EdgeCount,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
