package http

import (
	"github.com/gin-gonic/gin"

	"anime-catalog/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires an authenticated principal; Authorize applies the
// configured path rules (admin routes live under /admin).
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	animes := rg.Group("/animes", mw.Auth(), mw.Authorize())
	{
		animes.GET("", h.List)
		animes.GET("/all", h.ListAll)
		animes.GET("/find", h.FindByName)
		animes.GET("/:id", h.Detail)

		admin := animes.Group("/admin")
		admin.POST("", h.Create)
		admin.POST("/save-many", h.CreateMany)
		admin.PUT("", h.Replace)
		admin.DELETE("/delete-many", h.DeleteMany)
		admin.DELETE("/:id", h.Delete)
		admin.GET("/by-id-user-details/:id", h.DetailWithPrincipal)
	}
}
