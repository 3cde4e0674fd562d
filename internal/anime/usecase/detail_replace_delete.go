package usecase

import (
	"context"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
)

// Detail retrieves a single Anime by id. Returns ErrAnimeNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (anime.Anime, error) {
	a, err := uc.repo.GetOneAnime(ctx, repo.GetOneAnimeOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneAnime: %v", err)
		return anime.Anime{}, err
	}
	if a.ID == 0 {
		return anime.Anime{}, anime.ErrAnimeNotFound
	}
	return a, nil
}

// Replace overwrites the name of an existing Anime. Returns ErrAnimeNotFound when not found.
func (uc *implUseCase) Replace(ctx context.Context, input anime.UpdateAnimeInput) error {
	if _, err := uc.Detail(ctx, input.ID); err != nil {
		return err
	}

	a := anime.ToAnimeFromUpdate(input)
	if _, err := uc.repo.SaveAnime(ctx, repo.SaveAnimeOptions{ID: a.ID, Name: a.Name}); err != nil {
		uc.l.Errorf(ctx, "uc.Replace SaveAnime: %v", err)
		return err
	}
	return nil
}

// Delete removes an Anime by id. Returns ErrAnimeNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteAnime(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteAnime: %v", err)
		return err
	}
	return nil
}

// DeleteMany removes every referenced Anime. Unknown ids are ignored.
func (uc *implUseCase) DeleteMany(ctx context.Context, refs []anime.IDRef) error {
	ids := make([]int64, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	ids = repo.DistinctIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	if err := uc.repo.DeleteAnimes(ctx, ids); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteMany DeleteAnimes: %v", err)
		return err
	}
	return nil
}
