package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"anime-catalog/internal/anime"
	pkgErrors "anime-catalog/pkg/errors"
)

// bindError converts a bind failure into a validation error, or a 400
// framework failure when the body could not be read at all.
func bindError(err error) error {
	if verr := pkgErrors.FromValidator(err, validationMessages); verr != nil {
		return verr
	}
	return pkgErrors.NewInternalError(http.StatusBadRequest, err)
}

// processIDParam parses the :id path segment.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgErrors.NewBadRequestError(fmt.Sprintf("Invalid id: %q", raw))
	}
	return id, nil
}

// processListReq reads page, size and sort. Bad values fall back to defaults.
func (h *handler) processListReq(c *gin.Context) listReq {
	req := listReq{
		Page: h.page.DefaultPage,
		Size: h.page.DefaultSize,
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n >= 0 {
		req.Page = n
	}
	if n, err := strconv.Atoi(c.Query("size")); err == nil && n > 0 {
		req.Size = min(n, h.page.MaxSize)
	}
	// Pages past the last representable offset all land on the same empty page.
	req.Page = min(req.Page, anime.MaxPage(req.Size))
	req.Sort = parseSort(c.QueryArray("sort"))
	return req
}

// parseSort reads `field[,asc|desc]` clauses, dropping unknown fields.
func parseSort(values []string) []anime.Sort {
	var sorts []anime.Sort
	for _, v := range values {
		field, dir, _ := strings.Cut(v, ",")
		f := anime.SortField(strings.TrimSpace(field))
		if f != anime.SortByID && f != anime.SortByName {
			continue
		}
		sorts = append(sorts, anime.Sort{
			Field: f,
			Desc:  strings.EqualFold(strings.TrimSpace(dir), "desc"),
		})
	}
	return sorts
}

// processFindReq requires the name query parameter to be present; it may be empty.
func (h *handler) processFindReq(c *gin.Context) (string, error) {
	name, ok := c.GetQuery("name")
	if !ok {
		return "", pkgErrors.NewBadRequestError("Required request parameter 'name' is not present")
	}
	return name, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processCreateManyReq binds the array; element failures are reported with their index.
func (h *handler) processCreateManyReq(c *gin.Context) (createManyReq, error) {
	var req createManyReq
	if err := binding.JSON.Bind(c.Request, &req); err != nil {
		var sliceErr binding.SliceValidationError
		if !errors.As(err, &sliceErr) {
			return nil, pkgErrors.NewInternalError(http.StatusBadRequest, err)
		}
		return nil, indexedValidationError(req)
	}
	return req, nil
}

// indexedValidationError validates each element so field names carry a `[i].` prefix.
func indexedValidationError(req createManyReq) error {
	verr := &pkgErrors.ValidationError{}
	for i, item := range req {
		err := binding.Validator.ValidateStruct(item)
		if err == nil {
			continue
		}
		itemErr := pkgErrors.FromValidator(err, validationMessages)
		if itemErr == nil {
			return pkgErrors.NewInternalError(http.StatusBadRequest, err)
		}
		verr.Append(fmt.Sprintf("[%d].", i), itemErr)
	}
	return verr
}

func (h *handler) processReplaceReq(c *gin.Context) (replaceReq, error) {
	var req replaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processDeleteManyReq(c *gin.Context) (deleteManyReq, error) {
	var req deleteManyReq
	if err := binding.JSON.Bind(c.Request, &req); err != nil {
		return nil, pkgErrors.NewInternalError(http.StatusBadRequest, err)
	}
	return req, nil
}
