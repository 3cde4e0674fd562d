package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"anime-catalog/internal/user"
	"anime-catalog/internal/user/repository"
	"anime-catalog/pkg/log"
	"anime-catalog/pkg/scope"
)

type implUseCase struct {
	repo      repository.Repository
	tokens    scope.Manager
	l         log.Logger
	dummyHash []byte
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates the user UseCase. cost is used for the dummy hash compared
// against when a username is unknown.
func New(repo repository.Repository, tokens scope.Manager, l log.Logger, cost int) (*implUseCase, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		repo:      repo,
		tokens:    tokens,
		l:         l,
		dummyHash: dummy,
	}, nil
}
