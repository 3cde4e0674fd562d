package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	userHTTP "anime-catalog/internal/user/delivery/http"
)

// setupUserDomain registers the open /auth routes.
func (srv HTTPServer) setupUserDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := userHTTP.New(srv.l, srv.userUC)
	userHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Auth routes registered")
	return nil
}
