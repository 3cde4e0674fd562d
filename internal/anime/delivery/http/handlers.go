package http

import (
	"github.com/gin-gonic/gin"

	"anime-catalog/internal/middleware"
	"anime-catalog/pkg/response"
)

// List godoc
// @Summary     List animes
// @Description Returns one page of the catalog. Invalid page or size values fall back to defaults.
// @Tags        Anime
// @Produce     json
// @Param       page query int    false "Zero-based page (default: 0)"
// @Param       size query int    false "Page size (default: 5)"
// @Param       sort query string false "field[,asc|desc]; fields: id, name"
// @Success     200 {object} pageResp
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     500 {object} response.ErrorBody "Internal Server Error"
// @Security    BasicAuth
// @Router      /animes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListReq(c)

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPageResp(output))
}

// ListAll godoc
// @Summary     List every anime
// @Tags        Anime
// @Produce     json
// @Success     200 {array}  animeResp
// @Failure     500 {object} response.ErrorBody "Internal Server Error"
// @Security    BasicAuth
// @Router      /animes/all [GET]
func (h *handler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()

	animes, err := h.uc.ListAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnimeResps(animes))
}

// Detail godoc
// @Summary     Get anime by id
// @Tags        Anime
// @Produce     json
// @Param       id path int true "Anime ID"
// @Success     200 {object} animeResp
// @Failure     400 {object} response.ErrorBody "Malformed id"
// @Failure     404 {object} response.ErrorBody "Not Found"
// @Security    BasicAuth
// @Router      /animes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnimeResp(a))
}

// DetailWithPrincipal godoc
// @Summary     Get anime by id (admin)
// @Description Same as GET /animes/{id}; additionally logs the requesting principal.
// @Tags        Anime Admin
// @Produce     json
// @Param       id path int true "Anime ID"
// @Success     200 {object} animeResp
// @Failure     400 {object} response.ErrorBody "Malformed id"
// @Failure     403 {object} response.ErrorBody "Forbidden"
// @Failure     404 {object} response.ErrorBody "Not Found"
// @Security    BasicAuth
// @Router      /animes/admin/by-id-user-details/{id} [GET]
func (h *handler) DetailWithPrincipal(c *gin.Context) {
	if sc, ok := middleware.GetScope(c); ok {
		h.l.Infof(c.Request.Context(), "principal %s roles=%v", sc.Username, sc.Roles)
	}
	h.Detail(c)
}

// FindByName godoc
// @Summary     Search animes by name
// @Description Case-sensitive substring match. An empty name returns an empty list.
// @Tags        Anime
// @Produce     json
// @Param       name query string true "Substring to look for"
// @Success     200 {array}  animeResp
// @Failure     400 {object} response.ErrorBody "Missing name"
// @Security    BasicAuth
// @Router      /animes/find [GET]
func (h *handler) FindByName(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := h.processFindReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	animes, err := h.uc.FindByName(ctx, name)
	if err != nil {
		h.l.Errorf(ctx, "uc.FindByName: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnimeResps(animes))
}

// Create godoc
// @Summary     Create an anime
// @Tags        Anime Admin
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Anime to create"
// @Success     201 {object} animeResp
// @Failure     400 {object} response.ErrorBody "Validation failed"
// @Failure     403 {object} response.ErrorBody "Forbidden"
// @Security    BasicAuth
// @Router      /animes/admin [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newAnimeResp(a))
}

// CreateMany godoc
// @Summary     Create several animes
// @Description Either every element is valid and all are created, or nothing is.
// @Tags        Anime Admin
// @Accept      json
// @Produce     json
// @Param       body body []createReq true "Animes to create"
// @Success     201 {array}  animeResp
// @Failure     400 {object} response.ErrorBody "Validation failed"
// @Security    BasicAuth
// @Router      /animes/admin/save-many [POST]
func (h *handler) CreateMany(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateManyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	animes, err := h.uc.CreateMany(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateMany: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newAnimeResps(animes))
}

// Replace godoc
// @Summary     Replace an anime
// @Tags        Anime Admin
// @Accept      json
// @Param       body body replaceReq true "Anime with id"
// @Success     204
// @Failure     400 {object} response.ErrorBody "Validation failed"
// @Failure     404 {object} response.ErrorBody "Not Found"
// @Security    BasicAuth
// @Router      /animes/admin [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Replace(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Replace: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete an anime
// @Tags        Anime Admin
// @Param       id path int true "Anime ID"
// @Success     204
// @Failure     400 {object} response.ErrorBody "Malformed id"
// @Failure     404 {object} response.ErrorBody "Not Found"
// @Security    BasicAuth
// @Router      /animes/admin/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

// DeleteMany godoc
// @Summary     Delete several animes
// @Description Unknown ids are ignored. Accepts [{"id":1}] or {"ids":[1]}.
// @Tags        Anime Admin
// @Accept      json
// @Param       body body []idRef true "Ids to delete"
// @Success     204
// @Failure     400 {object} response.ErrorBody "Malformed body"
// @Security    BasicAuth
// @Router      /animes/admin/delete-many [DELETE]
func (h *handler) DeleteMany(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteManyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteMany(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.DeleteMany: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
