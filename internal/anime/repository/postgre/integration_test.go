//go:build integration

package postgre

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime-catalog/internal/anime"
	repo "anime-catalog/internal/anime/repository"
	"anime-catalog/pkg/postgres/postgrestest"
)

func TestRepositoryAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	r := New(postgrestest.SetupTestDB(t), &mockLogger{})

	created, err := r.CreateAnimes(ctx, []repo.CreateAnimeOptions{{Name: "Bleach"}, {Name: "100% Love"}, {Name: "Naruto"}})
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "Bleach", created[0].Name)

	found, err := r.FindAnimesByName(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []anime.Anime{created[1]}, found)

	page, total, err := r.ListAnimes(ctx, repo.ListAnimesOptions{
		Limit: 2,
		Sort:  []anime.Sort{{Field: anime.SortByName, Desc: true}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"Naruto", "Bleach"}, []string{page[0].Name, page[1].Name})

	saved, err := r.SaveAnime(ctx, repo.SaveAnimeOptions{ID: created[0].ID, Name: "Bleach TYBW"})
	require.NoError(t, err)
	assert.Equal(t, created[0].ID, saved.ID)

	require.NoError(t, r.DeleteAnimes(ctx, []int64{created[0].ID, created[0].ID, 9999}))
	got, err := r.GetOneAnime(ctx, repo.GetOneAnimeOptions{ID: created[0].ID})
	require.NoError(t, err)
	assert.Zero(t, got.ID)

	all, err := r.ListAllAnimes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
