package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "anime-catalog/pkg/errors"
	"anime-catalog/pkg/log"
	"anime-catalog/pkg/response"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates an incoming X-Request-ID or generates one, and puts it
// on the request context for log lines.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request once the handler chain is done.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}

// RateLimit rejects requests with 429 once the shared token bucket is empty.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Too many requests"))
			return
		}
		c.Next()
	}
}

// Recovery turns a panic into a 500 error body.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.Error(c, pkgErrors.NewInternalError(http.StatusInternalServerError, fmt.Errorf("%v", recovered)))
	})
}
