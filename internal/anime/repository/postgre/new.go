package postgre

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"anime-catalog/internal/anime/repository"
	"anime-catalog/pkg/log"
)

const tableAnimes = "animes"

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type implRepository struct {
	db      DB
	l       log.Logger
	builder sq.StatementBuilderType
}

// New creates a new PostgreSQL-backed Repository for the anime domain.
func New(db DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("anime/repository/postgre: db is required")
	}
	return &implRepository{
		db:      db,
		l:       l,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// op names a repository method for log lines.
func (r *implRepository) op(method string) string {
	return fmt.Sprintf("anime/repository/postgre.%s", method)
}
