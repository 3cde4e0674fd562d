package http

import (
	"github.com/gin-gonic/gin"

	"anime-catalog/pkg/response"
)

// Login godoc
// @Summary     Issue an access token
// @Description Exchanges a username and password for a bearer token usable on /animes routes.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} tokenResp
// @Failure     400 {object} response.ErrorBody "Validation failed"
// @Failure     401 {object} response.ErrorBody "Bad credentials"
// @Router      /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(token))
}
