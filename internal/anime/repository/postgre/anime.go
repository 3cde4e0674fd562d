package postgre

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
)

func scanAnime(row pgx.CollectableRow) (anime.Anime, error) {
	var a anime.Anime
	err := row.Scan(&a.ID, &a.Name)
	return a, err
}

func (r *implRepository) queryAnimes(ctx context.Context, method, query string, args []any, failure error) ([]anime.Anime, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op(method), err)
		return nil, fmt.Errorf("%w: %v", failure, err)
	}
	animes, err := pgx.CollectRows(rows, scanAnime)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.op(method), err)
		return nil, fmt.Errorf("%w: %v", failure, err)
	}
	if animes == nil {
		animes = []anime.Anime{}
	}
	return animes, nil
}

// CreateAnime inserts a new Anime row and returns it with its assigned id.
func (r *implRepository) CreateAnime(ctx context.Context, opt repo.CreateAnimeOptions) (anime.Anime, error) {
	query, args, err := r.builder.Insert(tableAnimes).
		Columns("name").
		Values(opt.Name).
		Suffix("RETURNING id, name").
		ToSql()
	if err != nil {
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	var a anime.Anime
	if err := r.db.QueryRow(ctx, query, args...).Scan(&a.ID, &a.Name); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateAnime"), err)
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return a, nil
}

// CreateAnimes inserts all rows in one statement. Rows come back in VALUES order.
func (r *implRepository) CreateAnimes(ctx context.Context, opts []repo.CreateAnimeOptions) ([]anime.Anime, error) {
	if len(opts) == 0 {
		return []anime.Anime{}, nil
	}

	insert := r.builder.Insert(tableAnimes).Columns("name")
	for _, opt := range opts {
		insert = insert.Values(opt.Name)
	}
	query, args, err := insert.Suffix("RETURNING id, name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	return r.queryAnimes(ctx, "CreateAnimes", query, args, repo.ErrFailedToInsert)
}

// GetOneAnime retrieves a single Anime by id.
// Returns zero-value Anime (ID == 0) when not found; that is not an error.
func (r *implRepository) GetOneAnime(ctx context.Context, opt repo.GetOneAnimeOptions) (anime.Anime, error) {
	query, args, err := r.selectAnimes().Where(sq.Eq{"id": opt.ID}).Limit(1).ToSql()
	if err != nil {
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}

	var a anime.Anime
	err = r.db.QueryRow(ctx, query, args...).Scan(&a.ID, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return anime.Anime{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("GetOneAnime"), err)
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return a, nil
}

// ListAnimes returns one page of Animes and the total count.
func (r *implRepository) ListAnimes(ctx context.Context, opt repo.ListAnimesOptions) ([]anime.Anime, int64, error) {
	// 1. Count total (without pagination)
	countQuery, countArgs, err := r.builder.Select("COUNT(*)").From(tableAnimes).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.op("ListAnimes"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	// 2. Fetch page
	query, args, err := r.buildListQuery(opt)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	animes, err := r.queryAnimes(ctx, "ListAnimes", query, args, repo.ErrFailedToList)
	if err != nil {
		return nil, 0, err
	}
	return animes, total, nil
}

// ListAllAnimes returns every Anime ordered by id.
func (r *implRepository) ListAllAnimes(ctx context.Context) ([]anime.Anime, error) {
	query, args, err := r.selectAnimes().OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return r.queryAnimes(ctx, "ListAllAnimes", query, args, repo.ErrFailedToList)
}

// FindAnimesByName returns Animes whose name contains name (case-sensitive).
func (r *implRepository) FindAnimesByName(ctx context.Context, name string) ([]anime.Anime, error) {
	query, args, err := r.selectAnimes().
		Where(sq.Like{"name": repo.ContainsPattern(name)}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return r.queryAnimes(ctx, "FindAnimesByName", query, args, repo.ErrFailedToList)
}

// SaveAnime upserts the row keyed by opt.ID.
func (r *implRepository) SaveAnime(ctx context.Context, opt repo.SaveAnimeOptions) (anime.Anime, error) {
	query, args, err := r.builder.Insert(tableAnimes).
		Columns(animeColumns...).
		Values(opt.ID, opt.Name).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name RETURNING id, name").
		ToSql()
	if err != nil {
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}

	var a anime.Anime
	if err := r.db.QueryRow(ctx, query, args...).Scan(&a.ID, &a.Name); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("SaveAnime"), err)
		return anime.Anime{}, fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	return a, nil
}

// DeleteAnime removes an Anime by id. Deleting a missing id is a no-op.
func (r *implRepository) DeleteAnime(ctx context.Context, id int64) error {
	return r.deleteWhere(ctx, "DeleteAnime", sq.Eq{"id": id})
}

// DeleteAnimes removes every listed id in one statement; unknown ids are ignored.
func (r *implRepository) DeleteAnimes(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.deleteWhere(ctx, "DeleteAnimes", sq.Eq{"id": ids})
}

func (r *implRepository) deleteWhere(ctx context.Context, method string, pred sq.Eq) error {
	query, args, err := r.builder.Delete(tableAnimes).Where(pred).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op(method), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}
