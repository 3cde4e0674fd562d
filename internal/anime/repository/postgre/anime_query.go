package postgre

import (
	sq "github.com/Masterminds/squirrel"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
)

var animeColumns = []string{"id", "name"}

var sortColumns = map[anime.SortField]string{
	anime.SortByID:   "id",
	anime.SortByName: "name",
}

func (r *implRepository) selectAnimes() sq.SelectBuilder {
	return r.builder.Select(animeColumns...).From(tableAnimes)
}

// orderBy renders the ORDER BY terms for sorts, ignoring unknown fields.
// id is always the final term so pages are stable.
func (r *implRepository) orderBy(sorts []anime.Sort) []string {
	terms := make([]string, 0, len(sorts)+1)
	byID := false
	for _, s := range sorts {
		col, ok := sortColumns[s.Field]
		if !ok {
			continue
		}
		dir := " ASC"
		if s.Desc {
			dir = " DESC"
		}
		terms = append(terms, col+dir)
		if s.Field == anime.SortByID {
			byID = true
			break
		}
	}
	if !byID {
		terms = append(terms, "id ASC")
	}
	return terms
}

// buildListQuery builds the paged SELECT for ListAnimes.
func (r *implRepository) buildListQuery(opt repo.ListAnimesOptions) (string, []any, error) {
	q := r.selectAnimes().OrderBy(r.orderBy(opt.Sort)...)
	if opt.Limit > 0 {
		q = q.Limit(uint64(opt.Limit))
	}
	if opt.Offset > 0 {
		q = q.Offset(uint64(opt.Offset))
	}
	return q.ToSql()
}
