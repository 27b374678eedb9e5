package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"adhd-task-assistant/internal/model"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"
	AnonymousUser  = "anonymous"

	scopeKey = "scope"
)

// Scope stores the caller label from request headers on the context.
// The label is for logs only; it does not partition tasks.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		}
		if sc.UserID == "" {
			sc.UserID = AnonymousUser
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope set by Scope, or the anonymous scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: AnonymousUser}
}
