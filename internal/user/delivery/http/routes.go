package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the open authentication routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}
