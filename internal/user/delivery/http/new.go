package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"anime-catalog/internal/user"
	pkgErrors "anime-catalog/pkg/errors"
	"anime-catalog/pkg/log"
)

type Handler interface {
	Login(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates the HTTP handler for authentication routes.
func New(l log.Logger, uc user.UseCase) *handler {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		pkgErrors.UseJSONFieldNames(v)
	}
	return &handler{l: l, uc: uc}
}
