package repository

import "anime-catalog/internal/anime"

// CreateAnimeOptions holds parameters for inserting a new Anime.
type CreateAnimeOptions struct {
	Name string
}

// GetOneAnimeOptions holds filter parameters for fetching a single Anime.
type GetOneAnimeOptions struct {
	ID int64
}

// ListAnimesOptions holds pagination parameters for listing Animes.
// An empty Sort orders by id ascending.
type ListAnimesOptions struct {
	Limit  int
	Offset int
	Sort   []anime.Sort
}

// SaveAnimeOptions writes Name under ID, inserting the row when ID is unknown.
type SaveAnimeOptions struct {
	ID   int64
	Name string
}
