package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "anime-catalog/pkg/errors"
)

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if verr := pkgErrors.FromValidator(err, validationMessages); verr != nil {
			return req, verr
		}
		return req, pkgErrors.NewInternalError(http.StatusBadRequest, err)
	}
	return req, nil
}
