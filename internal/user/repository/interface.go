package repository

import (
	"context"

	"anime-catalog/internal/user"
)

// Repository looks up users. An unknown username yields a zero-value User and no error.
type Repository interface {
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
}
