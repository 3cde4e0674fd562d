package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"anime-catalog/internal/model"
	"anime-catalog/internal/user"
	"anime-catalog/pkg/response"
)

const (
	reasonAuthRequired = "Full authentication is required to access this resource"
	reasonBadCreds     = "Bad credentials"
	reasonForbidden    = "Access Denied"
)

// Auth accepts HTTP Basic credentials or a Bearer token and stores the
// principal on the context. Anything else is rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			sc  model.Scope
			err error
		)
		if username, password, ok := c.Request.BasicAuth(); ok {
			sc, err = m.basic(c, username, password)
		} else if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			sc, err = m.users.Verify(ctx, token)
		} else {
			response.Unauthorized(c, m.realm, reasonAuthRequired)
			return
		}

		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) || errors.Is(err, user.ErrInvalidToken) {
				response.Unauthorized(c, m.realm, reasonBadCreds)
				return
			}
			m.l.Errorf(ctx, "middleware.Auth: %v", err)
			response.Error(c, err)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

func (m Middleware) basic(c *gin.Context, username, password string) (model.Scope, error) {
	if m.cache == nil {
		return m.users.Authenticate(c.Request.Context(), username, password)
	}

	key := credentialKey(username, password)
	if sc, ok := m.cache.Get(key); ok {
		return sc, nil
	}
	sc, err := m.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		return model.Scope{}, err
	}
	m.cache.Add(key, sc)
	return sc, nil
}

// credentialKey hashes the pair so plain passwords never sit in the cache.
func credentialKey(username, password string) string {
	sum := sha256.Sum256([]byte(username + "\x00" + password))
	return hex.EncodeToString(sum[:])
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authorize applies the first access rule whose prefix matches the path.
// A rule with an empty role, or no matching rule, admits any principal.
func (m Middleware) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c, m.realm, reasonAuthRequired)
			return
		}
		if role := m.requiredRole(c.Request.URL.Path); role != "" && !sc.HasRole(role) {
			m.l.Warnf(c.Request.Context(), "middleware.Authorize: %s lacks %s for %s", sc.Username, role, c.Request.URL.Path)
			response.Forbidden(c, reasonForbidden)
			return
		}
		c.Next()
	}
}

func (m Middleware) requiredRole(path string) string {
	for _, r := range m.rules {
		if matchPrefix(path, r.Prefix) {
			return r.Role
		}
	}
	return ""
}

// matchPrefix matches whole path segments: /animes/admin matches
// /animes/admin and /animes/admin/1 but not /animes/administrators.
func matchPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
