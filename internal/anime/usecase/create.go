package usecase

import (
	"context"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
)

// Create persists a new Anime and returns it with its assigned id.
func (uc *implUseCase) Create(ctx context.Context, input anime.CreateAnimeInput) (anime.Anime, error) {
	a := anime.ToAnime(input)
	created, err := uc.repo.CreateAnime(ctx, repo.CreateAnimeOptions{Name: a.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateAnime: %v", err)
		return anime.Anime{}, err
	}
	return created, nil
}

// CreateMany persists inputs in one batch. Output order follows input order.
func (uc *implUseCase) CreateMany(ctx context.Context, inputs []anime.CreateAnimeInput) ([]anime.Anime, error) {
	if len(inputs) == 0 {
		return []anime.Anime{}, nil
	}

	animes := anime.ToAnimes(inputs)
	opts := make([]repo.CreateAnimeOptions, len(animes))
	for i, a := range animes {
		opts[i] = repo.CreateAnimeOptions{Name: a.Name}
	}

	created, err := uc.repo.CreateAnimes(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateMany CreateAnimes: %v", err)
		return nil, err
	}
	return created, nil
}
