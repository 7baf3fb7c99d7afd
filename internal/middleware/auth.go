package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/prochat/internal/shared"
	"github.com/thereayou/prochat/pkg/auth"
)

const UsernameKey = "username"

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// AuthMiddleware проверяет токен сессии и кладёт username в контекст запроса
func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		username, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, shared.ErrStoreUnavailable) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			}
			c.Abort()
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
