package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "anime-catalog/pkg/errors"
)

// now is swapped in tests.
var now = time.Now

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error translates err into an ErrorBody, writes it and aborts the chain.
func Error(c *gin.Context, err error) {
	body := NewErrorBody(err)
	c.AbortWithStatusJSON(body.HTTPStatusCode, body)
}

// NewErrorBody builds the body for err. Unknown errors become 500s.
func NewErrorBody(err error) ErrorBody {
	var (
		notFound   *pkgErrors.NotFoundError
		validation *pkgErrors.ValidationError
		httpErr    *pkgErrors.HTTPError
		internal   *pkgErrors.InternalError
	)

	switch {
	case errors.As(err, &notFound):
		return newBody(http.StatusNotFound, TitleNotFound, notFound.Message)
	case errors.As(err, &validation):
		body := newBody(http.StatusBadRequest, TitleNotValid, ValidationDetails)
		body.Fields = validation.FieldNames()
		body.FieldsErrors = validation.Messages()
		return body
	case errors.As(err, &httpErr):
		return newBody(httpErr.Status, TitleResponseStatus, httpErr.Reason)
	case errors.As(err, &internal):
		return newBody(internal.StatusCode(), TitleInternal, internal.Error())
	default:
		details := http.StatusText(http.StatusInternalServerError)
		if err != nil {
			details = err.Error()
		}
		return newBody(http.StatusInternalServerError, TitleInternal, details)
	}
}

func newBody(status int, title, details string) ErrorBody {
	return ErrorBody{
		Timestamp:        DateTime(now()),
		Title:            title,
		HTTPStatusCode:   status,
		ReasonPhrase:     http.StatusText(status),
		Details:          details,
		DeveloperMessage: DeveloperMessage,
	}
}

// Unauthorized sends 401 with a Basic challenge.
func Unauthorized(c *gin.Context, realm, reason string) {
	c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
	Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, reason))
}

// Forbidden sends 403.
func Forbidden(c *gin.Context, reason string) {
	Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, reason))
}
