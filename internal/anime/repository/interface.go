package repository

import (
	"context"

	"anime-catalog/internal/anime"
)

// Repository is the composed interface for the anime domain data store.
type Repository interface {
	AnimeRepository
}

// AnimeRepository defines all data access methods for the Anime entity.
// Lookups that find nothing return a zero-value Anime (ID == 0) and no error.
type AnimeRepository interface {
	CreateAnime(ctx context.Context, opt CreateAnimeOptions) (anime.Anime, error)
	CreateAnimes(ctx context.Context, opts []CreateAnimeOptions) ([]anime.Anime, error)
	GetOneAnime(ctx context.Context, opt GetOneAnimeOptions) (anime.Anime, error)
	ListAnimes(ctx context.Context, opt ListAnimesOptions) ([]anime.Anime, int64, error)
	ListAllAnimes(ctx context.Context) ([]anime.Anime, error)
	FindAnimesByName(ctx context.Context, name string) ([]anime.Anime, error)
	SaveAnime(ctx context.Context, opt SaveAnimeOptions) (anime.Anime, error)
	DeleteAnime(ctx context.Context, id int64) error
	DeleteAnimes(ctx context.Context, ids []int64) error
}
