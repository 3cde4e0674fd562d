package usecase

import (
	"anime-catalog/internal/anime"
	"anime-catalog/internal/anime/repository"
	"anime-catalog/pkg/log"
)

// implUseCase is the private implementation of anime.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ anime.UseCase = (*implUseCase)(nil)

// New creates a new anime UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
