package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	animeHTTP "anime-catalog/internal/anime/delivery/http"
	animeUC "anime-catalog/internal/anime/usecase"
	"anime-catalog/internal/middleware"
)

// setupAnimeDomain initializes the anime domain and registers its routes.
func (srv HTTPServer) setupAnimeDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase over the repository chosen by storage.driver
	uc := animeUC.New(srv.animeRepo, srv.l)

	// 2. HTTP Handler
	h := animeHTTP.New(srv.l, uc, animeHTTP.PageConfig{
		DefaultPage: srv.pagination.DefaultPage,
		DefaultSize: srv.pagination.DefaultSize,
		MaxSize:     srv.pagination.MaxSize,
	})

	// 3. Routes: registers /animes and /animes/admin
	animeHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Anime domain registered")
	return nil
}
