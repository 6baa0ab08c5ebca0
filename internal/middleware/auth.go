package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OlegGirko/boss-launcher-webhook/internal/model"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/response"
)

// scopeKey is the gin context key holding the caller's scope.
const scopeKey = "scope"

// Auth requires a valid bearer token and stores the resolved scope in
// the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := m.resolveScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// OptionalAuth resolves the scope when a valid token is present but
// lets anonymous requests through. Used by the landing listing, where
// visibility widens for signed-in callers.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc, ok := m.resolveScope(c); ok {
			c.Set(scopeKey, sc)
		}
		c.Next()
	}
}

func (m Middleware) resolveScope(c *gin.Context) (model.Scope, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return model.Scope{}, false
	}
	username, ok := m.auth.Tokens[token]
	if !ok {
		m.l.Warnf(c.Request.Context(), "rejected unknown API token from %s", c.ClientIP())
		return model.Scope{}, false
	}
	return model.Scope{Username: username}, true
}

// ScopeFromContext extracts the caller scope stored by Auth or
// OptionalAuth. The zero scope means anonymous.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
