// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Request ID keys and header.
const (
	RequestIDKey       = "request_id"
	ClientRequestIDKey = "client_request_id"
	RequestIDHeader    = "X-Request-ID"
)

// RequestID tags each request with a server-issued UUID, stored under
// RequestIDKey and echoed in the response header. An incoming X-Request-ID
// is kept under ClientRequestIDKey for correlation but never replaces ours.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		if theirs := c.GetHeader(RequestIDHeader); theirs != "" {
			c.Set(ClientRequestIDKey, theirs)
			log.WithFields(logrus.Fields{
				RequestIDKey:       id,
				ClientRequestIDKey: theirs,
			}).Debug("request id issued")
		}

		c.Next()
	}
}
