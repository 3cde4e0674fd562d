package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "anime-catalog/pkg/errors"
	"anime-catalog/pkg/response"
)

const (
	ServiceName    = "anime-catalog"
	ServiceVersion = "1.0.0"
)

type probeResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

func (srv HTTPServer) probe(status string) probeResp {
	return probeResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
	}
}

// healthCheck
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck answers 503 until the configured store responds.
// @Summary Readiness Check
// @Description Check if the API and its store are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Failure 503 {object} response.ErrorBody "Store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready == nil {
		response.OK(c, srv.probe("ready"))
		return
	}

	ctx := c.Request.Context()
	if err := srv.ready(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Store unavailable"))
		return
	}
	response.OK(c, srv.probe("ready"))
}

// liveCheck
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
