package user

import (
	"context"

	"anime-catalog/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Authenticate checks a username/password pair and returns the principal.
	Authenticate(ctx context.Context, username, password string) (model.Scope, error)
	Login(ctx context.Context, input LoginInput) (Token, error)
	Verify(ctx context.Context, token string) (model.Scope, error)
}
