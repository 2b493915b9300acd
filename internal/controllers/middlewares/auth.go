package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/tokens"
)

const (
	// UserIDKey ключ идентификатора аутентифицированного пользователя в контексте gin.
	UserIDKey = "userID"
	// TokenIDKey ключ идентификатора (jti) текущего токена в контексте gin.
	TokenIDKey = "tokenID"

	bearerPrefix = "Bearer "
)

// AuthMiddleware пропускает только запросы с валидным `Authorization: Bearer <jwt>`.
func AuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		claims, err := tokens.ValidateUserJWT(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), jwtSecret)
		if err != nil {
			if !errors.Is(err, tokens.ErrTokenExpired) {
				_ = c.Error(fmt.Errorf("auth middleware: %w", err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			_ = c.Error(fmt.Errorf("auth middleware: %w", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenIDKey, claims.ID)
		c.Next()
	}
}

// UserID возвращает идентификатор пользователя, установленный AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
