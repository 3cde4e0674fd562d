package repository_test

import (
	"context"
	"errors"
	"testing"

	"anime-catalog/internal/user"
	"anime-catalog/internal/user/repository"
)

type fixedRepo struct {
	users map[string]user.User
	err   error
	hits  int
}

func (f *fixedRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (user.User, error) {
	f.hits++
	if f.err != nil {
		return user.User{}, f.err
	}
	return f.users[opt.Username], nil
}

func TestChain(t *testing.T) {
	seeds := &fixedRepo{users: map[string]user.User{"albert": {Username: "albert", Name: "seed"}}}
	db := &fixedRepo{users: map[string]user.User{
		"albert": {Username: "albert", Name: "db"},
		"bob":    {Username: "bob"},
	}}
	r := repository.Chain(seeds, db)
	ctx := context.Background()

	t.Run("first match wins", func(t *testing.T) {
		u, err := r.GetOneUser(ctx, repository.GetOneUserOptions{Username: "albert"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "seed" {
			t.Errorf("expected seed user, got %q", u.Name)
		}
	})

	t.Run("falls through", func(t *testing.T) {
		u, _ := r.GetOneUser(ctx, repository.GetOneUserOptions{Username: "bob"})
		if u.Username != "bob" {
			t.Errorf("expected bob, got %+v", u)
		}
	})

	t.Run("unknown is zero", func(t *testing.T) {
		u, err := r.GetOneUser(ctx, repository.GetOneUserOptions{Username: "carol"})
		if err != nil || u.Username != "" {
			t.Errorf("got %+v, %v", u, err)
		}
	})

	t.Run("errors stop the chain", func(t *testing.T) {
		broken := &fixedRepo{err: errors.New("down")}
		after := &fixedRepo{}
		_, err := repository.Chain(broken, after).GetOneUser(ctx, repository.GetOneUserOptions{Username: "x"})
		if err == nil {
			t.Fatal("expected error")
		}
		if after.hits != 0 {
			t.Error("later repositories must not be consulted")
		}
	})
}
