package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *implRepository) write(ctx context.Context, pipe redis.Pipeliner, a anime.Anime) error {
	data, err := json.Marshal(record{ID: a.ID, Name: a.Name})
	if err != nil {
		return err
	}
	pipe.Set(ctx, r.animeKey(a.ID), data, 0)
	pipe.ZAdd(ctx, r.indexKey(), &redis.Z{Score: float64(a.ID), Member: a.ID})
	return nil
}

// load fetches the records for ids in order, skipping ids whose record is gone.
func (r *implRepository) load(ctx context.Context, ids []string) ([]anime.Anime, error) {
	if len(ids) == 0 {
		return []anime.Anime{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt index member %q: %w", id, err)
		}
		keys[i] = r.animeKey(n)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	animes := make([]anime.Anime, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, err
		}
		animes = append(animes, anime.Anime{ID: rec.ID, Name: rec.Name})
	}
	return animes, nil
}

func (r *implRepository) loadAll(ctx context.Context) ([]anime.Anime, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return r.load(ctx, ids)
}

// CreateAnime assigns the next id from the sequence and stores the record.
func (r *implRepository) CreateAnime(ctx context.Context, opt repo.CreateAnimeOptions) (anime.Anime, error) {
	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s Incr: %v", r.op("CreateAnime"), err)
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	a := anime.Anime{ID: id, Name: opt.Name}
	pipe := r.client.TxPipeline()
	if err := r.write(ctx, pipe, a); err != nil {
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateAnime"), err)
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return a, nil
}

// CreateAnimes reserves a contiguous id block and writes every record in one transaction.
func (r *implRepository) CreateAnimes(ctx context.Context, opts []repo.CreateAnimeOptions) ([]anime.Anime, error) {
	if len(opts) == 0 {
		return []anime.Anime{}, nil
	}

	last, err := r.client.IncrBy(ctx, r.seqKey(), int64(len(opts))).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s IncrBy: %v", r.op("CreateAnimes"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	first := last - int64(len(opts)) + 1
	animes := make([]anime.Anime, len(opts))
	pipe := r.client.TxPipeline()
	for i, opt := range opts {
		animes[i] = anime.Anime{ID: first + int64(i), Name: opt.Name}
		if err := r.write(ctx, pipe, animes[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateAnimes"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return animes, nil
}

// GetOneAnime returns a zero-value Anime when the key does not exist.
func (r *implRepository) GetOneAnime(ctx context.Context, opt repo.GetOneAnimeOptions) (anime.Anime, error) {
	data, err := r.client.Get(ctx, r.animeKey(opt.ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return anime.Anime{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("GetOneAnime"), err)
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return anime.Anime{ID: rec.ID, Name: rec.Name}, nil
}

// ListAnimes pages over the id index directly when ordering by id only;
// any other ordering loads and sorts the whole catalog.
func (r *implRepository) ListAnimes(ctx context.Context, opt repo.ListAnimesOptions) ([]anime.Anime, int64, error) {
	total, err := r.client.ZCard(ctx, r.indexKey()).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s ZCard: %v", r.op("ListAnimes"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	if desc, ok := repo.SortedByIDOnly(opt.Sort); ok {
		start := int64(opt.Offset)
		stop := int64(-1)
		if opt.Limit > 0 {
			stop = start + int64(opt.Limit) - 1
		}
		var ids []string
		if desc {
			ids, err = r.client.ZRevRange(ctx, r.indexKey(), start, stop).Result()
		} else {
			ids, err = r.client.ZRange(ctx, r.indexKey(), start, stop).Result()
		}
		if err != nil {
			r.l.Errorf(ctx, "%s ZRange: %v", r.op("ListAnimes"), err)
			return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		animes, err := r.load(ctx, ids)
		if err != nil {
			r.l.Errorf(ctx, "%s load: %v", r.op("ListAnimes"), err)
			return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		return animes, total, nil
	}

	all, err := r.loadAll(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s loadAll: %v", r.op("ListAnimes"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	repo.SortAnimes(all, opt.Sort)
	return repo.PageOf(all, opt.Offset, opt.Limit), total, nil
}

func (r *implRepository) ListAllAnimes(ctx context.Context) ([]anime.Anime, error) {
	animes, err := r.loadAll(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListAllAnimes"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return animes, nil
}

// FindAnimesByName scans the catalog for names containing name.
func (r *implRepository) FindAnimesByName(ctx context.Context, name string) ([]anime.Anime, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("FindAnimesByName"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	found := make([]anime.Anime, 0)
	for _, a := range all {
		if strings.Contains(a.Name, name) {
			found = append(found, a)
		}
	}
	return found, nil
}

func (r *implRepository) SaveAnime(ctx context.Context, opt repo.SaveAnimeOptions) (anime.Anime, error) {
	a := anime.Anime{ID: opt.ID, Name: opt.Name}
	pipe := r.client.TxPipeline()
	if err := r.write(ctx, pipe, a); err != nil {
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("SaveAnime"), err)
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	return a, nil
}

func (r *implRepository) DeleteAnime(ctx context.Context, id int64) error {
	return r.DeleteAnimes(ctx, []int64{id})
}

// DeleteAnimes removes records and index entries in one transaction.
func (r *implRepository) DeleteAnimes(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	members := make([]any, len(ids))
	for i, id := range ids {
		keys[i] = r.animeKey(id)
		members[i] = id
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	pipe.ZRem(ctx, r.indexKey(), members...)
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("DeleteAnimes"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}
