package middleware

import (
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"anime-catalog/config"
	"anime-catalog/internal/model"
	"anime-catalog/internal/user"
	"anime-catalog/pkg/log"
)

type Middleware struct {
	l       log.Logger
	users   user.UseCase
	realm   string
	rules   []config.AccessRule
	cache   *expirable.LRU[string, model.Scope]
	limiter *rate.Limiter
}

// New builds the middleware set. Basic credentials are cached for
// authCfg.CacheTTL; a zero CacheSize disables the cache. The rate limiter is
// disabled when httpCfg.RateLimitPerSec is not positive.
func New(l log.Logger, users user.UseCase, authCfg config.AuthConfig, accessCfg config.AccessConfig, httpCfg config.HTTPServerConfig) Middleware {
	m := Middleware{
		l:     l,
		users: users,
		realm: authCfg.Realm,
		rules: accessCfg.Rules,
	}
	if authCfg.CacheSize > 0 {
		m.cache = expirable.NewLRU[string, model.Scope](authCfg.CacheSize, nil, authCfg.CacheTTL)
	}
	if httpCfg.RateLimitPerSec > 0 {
		burst := httpCfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Limit(httpCfg.RateLimitPerSec), burst)
	}
	return m
}
