package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abbykyun/daa-visual/builder"
	"github.com/abbykyun/daa-visual/internal/metrics"
	"github.com/abbykyun/daa-visual/internal/middleware"
	"github.com/abbykyun/daa-visual/internal/session"
	"github.com/abbykyun/daa-visual/trace"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
)

// respondError writes a standardized JSON error response and aborts the
// request. The request ID set by the middleware is echoed back.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()

	resp := gin.H{"code": code, "message": message}
	if rid := c.GetString(middleware.RequestIDKey); rid != "" {
		resp["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, resp)
}

// respondWorkspaceError maps workspace, builder and trace sentinels to HTTP
// statuses. Anything unrecognised is logged and reported as a 500.
func respondWorkspaceError(c *gin.Context, log *logrus.Logger, action string, err error) {
	switch {
	case errors.Is(err, session.ErrNodeNotFound),
		errors.Is(err, session.ErrSourceNotFound),
		errors.Is(err, session.ErrNoRun):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, session.ErrBlankLabel),
		errors.Is(err, session.ErrInvalidEdge),
		errors.Is(err, trace.ErrUnknownAlgorithm),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrUnknownPreset):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	default:
		log.WithError(err).WithField("action", action).Error("workspace operation failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
