// Package middleware provides HTTP middleware for the refdata service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/service"
)

// Context keys under which the auth middleware stores token claims.
const (
	ContextUserIDKey   = "auth_user_id"
	ContextUsernameKey = "auth_username"
	ContextRoleKey     = "auth_role"
)

// Auth validates the bearer token on every request and stores its claims
// in the gin context. Requests with a missing, malformed, expired or
// revoked token are rejected with 401 before any handler runs.
func Auth(jwtService service.JWTService, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or malformed Authorization header"})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		if authService != nil && authService.IsRevoked(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token has been revoked"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole enforces the role policy for a route group. A valid token
// whose role claim is not in the allowed set gets 403, not 401.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextRoleKey)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "insufficient role"})
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
