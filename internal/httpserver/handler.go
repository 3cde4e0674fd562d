package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"anime-catalog/internal/model"
	pkgErrors "anime-catalog/pkg/errors"
	"anime-catalog/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.Use(
		srv.mw.Recovery(),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.RateLimit(),
	)

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewInternalError(http.StatusNotFound,
			fmt.Errorf("No handler found for %s %s", c.Request.Method, c.Request.URL.Path)))
	})
	srv.gin.NoMethod(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewInternalError(http.StatusMethodNotAllowed,
			fmt.Errorf("Request method '%s' is not supported", c.Request.Method)))
	})
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// API docs are not served in production.
	if srv.environment == string(model.EnvironmentProduction) {
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	root := &srv.gin.RouterGroup

	if err := srv.setupUserDomain(ctx, root); err != nil {
		return err
	}
	if err := srv.setupAnimeDomain(ctx, root, srv.mw); err != nil {
		return err
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
