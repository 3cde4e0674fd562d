package memory

import (
	"context"
	"strings"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
)

func (r *implRepository) CreateAnime(ctx context.Context, opt repo.CreateAnimeOptions) (anime.Anime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(opt.Name), nil
}

func (r *implRepository) CreateAnimes(ctx context.Context, opts []repo.CreateAnimeOptions) ([]anime.Anime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]anime.Anime, len(opts))
	for i, opt := range opts {
		out[i] = r.insert(opt.Name)
	}
	return out, nil
}

// insert must be called with mu held.
func (r *implRepository) insert(name string) anime.Anime {
	r.lastID++
	a := anime.Anime{ID: r.lastID, Name: name}
	r.animes[a.ID] = a
	return a
}

func (r *implRepository) GetOneAnime(ctx context.Context, opt repo.GetOneAnimeOptions) (anime.Anime, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.animes[opt.ID], nil
}

func (r *implRepository) ListAnimes(ctx context.Context, opt repo.ListAnimesOptions) ([]anime.Anime, int64, error) {
	all := r.snapshot()
	repo.SortAnimes(all, opt.Sort)
	return repo.PageOf(all, opt.Offset, opt.Limit), int64(len(all)), nil
}

func (r *implRepository) ListAllAnimes(ctx context.Context) ([]anime.Anime, error) {
	all := r.snapshot()
	repo.SortAnimes(all, nil)
	return all, nil
}

func (r *implRepository) FindAnimesByName(ctx context.Context, name string) ([]anime.Anime, error) {
	all := r.snapshot()
	repo.SortAnimes(all, nil)

	found := make([]anime.Anime, 0)
	for _, a := range all {
		if strings.Contains(a.Name, name) {
			found = append(found, a)
		}
	}
	return found, nil
}

func (r *implRepository) SaveAnime(ctx context.Context, opt repo.SaveAnimeOptions) (anime.Anime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := anime.Anime{ID: opt.ID, Name: opt.Name}
	r.animes[a.ID] = a
	if a.ID > r.lastID {
		r.lastID = a.ID
	}
	return a, nil
}

func (r *implRepository) DeleteAnime(ctx context.Context, id int64) error {
	return r.DeleteAnimes(ctx, []int64{id})
}

func (r *implRepository) DeleteAnimes(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.animes, id)
	}
	return nil
}

// snapshot copies the catalog so callers can sort without holding the lock.
func (r *implRepository) snapshot() []anime.Anime {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]anime.Anime, 0, len(r.animes))
	for _, a := range r.animes {
		out = append(out, a)
	}
	return out
}
