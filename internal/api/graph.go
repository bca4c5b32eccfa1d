package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/internal/session"
)

// GraphHandler serves the graph editing endpoints.
type GraphHandler struct {
	ws           *session.Workspace
	log          *logrus.Logger
	defaultNodes int
}

// NewGraphHandler creates a GraphHandler. defaultNodes is used by
// POST /graph/random when the body leaves nodes out.
func NewGraphHandler(ws *session.Workspace, log *logrus.Logger, defaultNodes int) *GraphHandler {
	return &GraphHandler{ws: ws, log: log, defaultNodes: defaultNodes}
}

// Get handles GET /graph.
func (h *GraphHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Snapshot())
}

// Stats handles GET /graph/stats.
func (h *GraphHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Stats())
}

// AddNode handles POST /graph/nodes.
func (h *GraphHandler) AddNode(c *gin.Context) {
	var req addNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}

	id, err := h.ws.AddNode(req.Label)
	if err != nil {
		respondWorkspaceError(c, h.log, "node.create", err)
		return
	}

	h.log.WithFields(logrus.Fields{"action": "node.create", "node_id": id}).Debug("graph edit")
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// RemoveNode handles DELETE /graph/nodes/:id.
func (h *GraphHandler) RemoveNode(c *gin.Context) {
	id := core.NodeID(c.Param("id"))
	if err := h.ws.RemoveNode(id); err != nil {
		respondWorkspaceError(c, h.log, "node.delete", err)
		return
	}

	h.log.WithFields(logrus.Fields{"action": "node.delete", "node_id": id}).Debug("graph edit")
	c.Status(http.StatusNoContent)
}

// AddEdge handles POST /graph/edges.
func (h *GraphHandler) AddEdge(c *gin.Context) {
	var req addEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}

	ids, err := h.ws.AddEdge(core.NodeID(req.From), core.NodeID(req.To), *req.Weight)
	if err != nil {
		respondWorkspaceError(c, h.log, "edge.create", err)
		return
	}

	h.log.WithFields(logrus.Fields{"action": "edge.create", "edge_ids": ids}).Debug("graph edit")
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

// SetDirected handles PUT /graph/directed.
func (h *GraphHandler) SetDirected(c *gin.Context) {
	var req directedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}

	h.ws.SetDirected(*req.Directed)
	c.JSON(http.StatusOK, gin.H{"directed": *req.Directed})
}

// Clear handles DELETE /graph.
func (h *GraphHandler) Clear(c *gin.Context) {
	h.ws.Clear()
	c.Status(http.StatusNoContent)
}

// Random handles POST /graph/random. A missing seed is taken from the clock
// and echoed back so the graph can be reproduced.
func (h *GraphHandler) Random(c *gin.Context) {
	var req randomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}
	if req.Nodes == 0 {
		req.Nodes = h.defaultNodes
	}
	seed := seedOrNow(req.Seed)

	if err := h.ws.Randomize(req.Nodes, seed); err != nil {
		respondWorkspaceError(c, h.log, "graph.random", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seed": seed, "graph": h.ws.Snapshot()})
}

// Preset handles POST /graph/preset.
func (h *GraphHandler) Preset(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")
		return
	}
	seed := seedOrNow(req.Seed)

	if err := h.ws.Preset(req.Kind, req.Nodes, seed); err != nil {
		respondWorkspaceError(c, h.log, "graph.preset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seed": seed, "graph": h.ws.Snapshot()})
}

func seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}

	return time.Now().UnixNano()
}
