package http

import (
	"errors"

	"anime-catalog/internal/anime"
	pkgErrors "anime-catalog/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Anything unrecognised passes through and renders as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, anime.ErrAnimeNotFound):
		return pkgErrors.NewNotFoundError("Anime not found")
	default:
		return err
	}
}
