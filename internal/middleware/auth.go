package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/redis"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware validates the bearer token and checks it is the user's
// single live session before injecting the user id.
func AuthMiddleware(tm *pkg.TokenManager, tokens *redis.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			return
		}

		claims, err := tm.ParseAccess(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			return
		}

		stored, err := tokens.Get(c.Request.Context(), claims.UserID)
		if err != nil || stored != parts[1] {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "session replaced by another login"})
			return
		}

		// Slide the session TTL on every authenticated request.
		if err := tokens.Extend(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
