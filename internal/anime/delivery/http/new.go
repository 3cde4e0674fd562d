package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"anime-catalog/internal/anime"
	pkgErrors "anime-catalog/pkg/errors"
	"anime-catalog/pkg/log"
)

// Handler is the public interface for the anime HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	ListAll(c *gin.Context)
	Detail(c *gin.Context)
	FindByName(c *gin.Context)
	Create(c *gin.Context)
	CreateMany(c *gin.Context)
	Replace(c *gin.Context)
	Delete(c *gin.Context)
	DeleteMany(c *gin.Context)
	DetailWithPrincipal(c *gin.Context)
}

// PageConfig holds listing defaults applied when query params are absent or invalid.
type PageConfig struct {
	DefaultPage int
	DefaultSize int
	MaxSize     int
}

type handler struct {
	l    log.Logger
	uc   anime.UseCase
	page PageConfig
}

// New creates a new HTTP handler for the anime domain.
func New(l log.Logger, uc anime.UseCase, page PageConfig) *handler {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		pkgErrors.UseJSONFieldNames(v)
	}
	return &handler{
		l:    l,
		uc:   uc,
		page: page,
	}
}
