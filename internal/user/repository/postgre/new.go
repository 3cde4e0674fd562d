package postgre

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"anime-catalog/internal/user"
	"anime-catalog/internal/user/repository"
	"anime-catalog/pkg/log"
)

const tableUsers = "app_users"

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type implRepository struct {
	db      DB
	l       log.Logger
	builder sq.StatementBuilderType
}

// New creates a user Repository over the app_users table.
func New(db DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/postgre: db is required")
	}
	return &implRepository{
		db:      db,
		l:       l,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (user.User, error) {
	query, args, err := r.builder.
		Select("id", "name", "username", "password", "roles").
		From(tableUsers).
		Where(sq.Eq{"username": opt.Username}).
		Limit(1).
		ToSql()
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	var u user.User
	err = r.db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Roles)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/postgre.GetOneUser: %v", err)
		return user.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return u, nil
}
