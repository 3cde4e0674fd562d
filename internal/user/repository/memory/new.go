package memory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"anime-catalog/internal/user"
	"anime-catalog/internal/user/repository"
)

// Seed is a configured user. Password is either plain text or a bcrypt hash.
type Seed struct {
	Name     string
	Username string
	Password string
	Roles    []string
}

type implRepository struct {
	users map[string]user.User
}

// New builds a read-only directory from seeds, hashing plain-text passwords with cost.
func New(seeds []Seed, cost int) (repository.Repository, error) {
	users := make(map[string]user.User, len(seeds))
	for i, s := range seeds {
		hash := s.Password
		if !isBcryptHash(hash) {
			b, err := bcrypt.GenerateFromPassword([]byte(s.Password), cost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %q: %w", s.Username, err)
			}
			hash = string(b)
		}
		users[s.Username] = user.User{
			ID:           int64(i + 1),
			Name:         s.Name,
			Username:     s.Username,
			PasswordHash: hash,
			Roles:        s.Roles,
		}
	}
	return &implRepository{users: users}, nil
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (user.User, error) {
	return r.users[opt.Username], nil
}
