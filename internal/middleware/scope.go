package middleware

import (
	"github.com/gin-gonic/gin"

	"anime-catalog/internal/model"
)

const scopeKey = "scope"

// SetScope attaches the authenticated principal to the request.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the principal set by Auth, if any.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
