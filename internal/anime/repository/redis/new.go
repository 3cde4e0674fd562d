package redis

import (
	"fmt"

	"github.com/go-redis/redis/v8"

	"anime-catalog/internal/anime/repository"
	"anime-catalog/pkg/log"
)

type implRepository struct {
	client redis.UniversalClient
	l      log.Logger
	prefix string
}

// New creates a Redis-backed Repository. Keys are namespaced under prefix.
func New(client redis.UniversalClient, prefix string, l log.Logger) repository.Repository {
	if client == nil {
		panic("anime/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l, prefix: prefix}
}

func (r *implRepository) op(method string) string {
	return fmt.Sprintf("anime/repository/redis.%s", method)
}

func (r *implRepository) seqKey() string {
	return r.prefix + ":anime:seq"
}

func (r *implRepository) indexKey() string {
	return r.prefix + ":animes"
}

func (r *implRepository) animeKey(id int64) string {
	return fmt.Sprintf("%s:anime:%d", r.prefix, id)
}
