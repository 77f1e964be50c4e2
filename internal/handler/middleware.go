package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/insightjournal/internal/auth"
)

const identityContextKey = "__identity"

// RequireRoles 是基于能力令牌的认证中间件：缺失或无效的令牌返回 401，
// 令牌有效但角色不在集合内返回 403。它必须挡在所有审核副作用之前。
func RequireRoles(tokens *auth.TokenIssuer, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" || raw == strings.TrimSpace(header) {
			respondError(c, http.StatusUnauthorized, "bearer token required")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			respondError(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}

		c.Set(identityContextKey, claims)
		c.Next()
	}
}

// Identity returns the claims stored by RequireRoles, if any.
func Identity(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(identityContextKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
