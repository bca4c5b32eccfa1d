package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/internal/session"
	"github.com/abbykyun/daa-visual/playback"
	"github.com/abbykyun/daa-visual/trace"
)

// RunHandler serves the run endpoints.
type RunHandler struct {
	ws  *session.Workspace
	log *logrus.Logger
}

// NewRunHandler creates a RunHandler.
func NewRunHandler(ws *session.Workspace, log *logrus.Logger) *RunHandler {
	return &RunHandler{ws: ws, log: log}
}

// Create handles POST /runs.
func (h *RunHandler) Create(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}

	alg, err := trace.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondWorkspaceError(c, h.log, "run.create", err)
		return
	}

	run, err := h.ws.Run(alg, core.NodeID(req.Source))
	if err != nil {
		respondWorkspaceError(c, h.log, "run.create", err)
		return
	}

	c.JSON(http.StatusCreated, run)
}

// Current handles GET /runs/current.
func (h *RunHandler) Current(c *gin.Context) {
	run, err := h.ws.Current()
	if err != nil {
		respondWorkspaceError(c, h.log, "run.get", err)
		return
	}

	c.JSON(http.StatusOK, run)
}

// Reset handles DELETE /runs/current.
func (h *RunHandler) Reset(c *gin.Context) {
	h.ws.Reset()
	c.JSON(http.StatusOK, gin.H{"status": playback.StatusReset})
}

// Step handles GET /runs/current/steps/:index and returns the playback view
// after applying that step; -1 is the ready view.
func (h *RunHandler) Step(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "index must be an integer")
		return
	}

	run, err := h.ws.Current()
	if err != nil {
		respondWorkspaceError(c, h.log, "run.step", err)
		return
	}
	if i < -1 || i >= len(run.Trace) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, playback.ErrIndexOutOfRange.Error())
		return
	}

	c.JSON(http.StatusOK, playback.Render(run, i))
}

// Table handles GET /runs/current/table.
func (h *RunHandler) Table(c *gin.Context) {
	run, err := h.ws.Current()
	if err != nil {
		respondWorkspaceError(c, h.log, "run.table", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"algorithm": run.Algorithm,
		"source":    run.Source,
		"rows":      trace.Table(run.Snapshot, run.Result),
	})
}
