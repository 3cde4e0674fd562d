package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anime-catalog/internal/anime"
)

func names(animes []anime.Anime) []string {
	out := make([]string, len(animes))
	for i, a := range animes {
		out[i] = a.Name
	}
	return out
}

func TestSortAnimes(t *testing.T) {
	base := func() []anime.Anime {
		return []anime.Anime{{ID: 3, Name: "B"}, {ID: 1, Name: "C"}, {ID: 2, Name: "B"}}
	}

	tests := []struct {
		name  string
		sorts []anime.Sort
		want  []string
	}{
		{"default is id asc", nil, []string{"C", "B", "B"}},
		{"name asc ties by id", []anime.Sort{{Field: anime.SortByName}}, []string{"B", "B", "C"}},
		{"name desc", []anime.Sort{{Field: anime.SortByName, Desc: true}}, []string{"C", "B", "B"}},
		{"unknown ignored", []anime.Sort{{Field: "year"}}, []string{"C", "B", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base()
			SortAnimes(got, tt.sorts)
			assert.Equal(t, tt.want, names(got))
		})
	}

	t.Run("ties keep id order", func(t *testing.T) {
		got := base()
		SortAnimes(got, []anime.Sort{{Field: anime.SortByName}})
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})
}

func TestPageOf(t *testing.T) {
	all := []anime.Anime{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Len(t, PageOf(all, 0, 2), 2)
	assert.Len(t, PageOf(all, 2, 2), 1)
	assert.Empty(t, PageOf(all, 3, 2))
	assert.NotNil(t, PageOf(all, 9, 2))
	assert.Len(t, PageOf(all, 0, 0), 3)
}

func TestSortedByIDOnly(t *testing.T) {
	desc, ok := SortedByIDOnly(nil)
	assert.True(t, ok)
	assert.False(t, desc)

	desc, ok = SortedByIDOnly([]anime.Sort{{Field: "year"}, {Field: anime.SortByID, Desc: true}})
	assert.True(t, ok)
	assert.True(t, desc)

	_, ok = SortedByIDOnly([]anime.Sort{{Field: anime.SortByName}})
	assert.False(t, ok)
}

func TestDistinctIDs(t *testing.T) {
	assert.Equal(t, []int64{4, 1, 2}, DistinctIDs([]int64{4, 1, 4, 2, 1}))
	assert.Empty(t, DistinctIDs(nil))
}
