package memory

import (
	"sync"

	"anime-catalog/internal/anime"
	"anime-catalog/internal/anime/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	animes map[int64]anime.Anime
	lastID int64
}

// New creates an in-process Repository. Contents are lost on restart.
func New() repository.Repository {
	return &implRepository{animes: make(map[int64]anime.Anime)}
}
