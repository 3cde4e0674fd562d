package usecase

import (
	"context"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
)

// List returns one page of the catalog. A non-positive size becomes
// anime.DefaultPageSize; the configured upper bound is applied by the caller.
func (uc *implUseCase) List(ctx context.Context, input anime.ListAnimesInput) (anime.ListAnimesOutput, error) {
	page, size := input.Page, input.Size
	if size <= 0 {
		size = anime.DefaultPageSize
	}
	page = min(max(page, 0), anime.MaxPage(size))

	animes, total, err := uc.repo.ListAnimes(ctx, repo.ListAnimesOptions{
		Limit:  size,
		Offset: page * size,
		Sort:   input.Sort,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAnimes: %v", err)
		return anime.ListAnimesOutput{}, err
	}

	return anime.ListAnimesOutput{
		Animes: animes,
		Total:  total,
		Page:   page,
		Size:   size,
	}, nil
}

// ListAll returns the whole catalog ordered by id.
func (uc *implUseCase) ListAll(ctx context.Context) ([]anime.Anime, error) {
	animes, err := uc.repo.ListAllAnimes(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAll ListAllAnimes: %v", err)
		return nil, err
	}
	if animes == nil {
		animes = []anime.Anime{}
	}
	return animes, nil
}

// FindByName returns every anime whose name contains name.
// An empty name matches nothing.
func (uc *implUseCase) FindByName(ctx context.Context, name string) ([]anime.Anime, error) {
	if name == "" {
		return []anime.Anime{}, nil
	}

	animes, err := uc.repo.FindAnimesByName(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindByName FindAnimesByName: %v", err)
		return nil, err
	}
	if animes == nil {
		animes = []anime.Anime{}
	}
	return animes, nil
}
