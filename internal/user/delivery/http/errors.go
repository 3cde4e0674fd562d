package http

import (
	"errors"
	"net/http"

	"anime-catalog/internal/user"
	pkgErrors "anime-catalog/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Bad credentials")
	default:
		return err
	}
}
