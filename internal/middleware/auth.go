package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-agenda/internal/model"
	"personal-agenda/pkg/response"
)

const scopeKey = "scope"

// Auth validates the Bearer token and injects the authenticated Scope into
// the gin context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(parts[1])
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID: payload.UserID,
			Email:  payload.Email,
		})
		c.Next()
	}
}

// ScopeFromContext returns the Scope the Auth middleware stored on the
// request, if any.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	val, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := val.(model.Scope)
	return sc, ok
}
