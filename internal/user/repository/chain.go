package repository

import (
	"context"

	"anime-catalog/internal/user"
)

type chain []Repository

// Chain consults repos in order and returns the first user found.
func Chain(repos ...Repository) Repository {
	return chain(repos)
}

func (c chain) GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error) {
	for _, r := range c {
		u, err := r.GetOneUser(ctx, opt)
		if err != nil {
			return user.User{}, err
		}
		if u.Username != "" {
			return u, nil
		}
	}
	return user.User{}, nil
}
