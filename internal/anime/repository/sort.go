package repository

import (
	"cmp"
	"slices"
	"strings"

	"anime-catalog/internal/anime"
)

// SortAnimes orders animes in place by sorts, falling back to id ascending.
// Unknown fields are ignored. Stores without server-side ordering use it.
func SortAnimes(animes []anime.Anime, sorts []anime.Sort) {
	slices.SortStableFunc(animes, func(a, b anime.Anime) int {
		for _, s := range sorts {
			var c int
			switch s.Field {
			case anime.SortByID:
				c = cmp.Compare(a.ID, b.ID)
			case anime.SortByName:
				c = strings.Compare(a.Name, b.Name)
			default:
				continue
			}
			if s.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// PageOf returns the window [offset, offset+limit) of animes, clamped to its bounds.
// A non-positive limit means no upper bound.
func PageOf(animes []anime.Anime, offset, limit int) []anime.Anime {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(animes) {
		return []anime.Anime{}
	}
	end := len(animes)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return animes[offset:end]
}

// SortedByIDOnly reports whether sorts orders by id alone, and in which direction.
func SortedByIDOnly(sorts []anime.Sort) (desc, ok bool) {
	for _, s := range sorts {
		switch s.Field {
		case anime.SortByID:
			return s.Desc, true
		case anime.SortByName:
			return false, false
		}
	}
	return false, true
}

// DistinctIDs returns ids with duplicates removed, first occurrence kept.
func DistinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
