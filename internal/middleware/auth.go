package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal/api/internal/config"
	"jobportal/api/internal/models"
	"jobportal/api/internal/repository"
	"jobportal/api/internal/security"
)

const currentUserKey = "current_user"

// UserFinder resolves a token subject back to a live user record.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// Auth admits requests carrying a valid bearer token. Every token failure
// (malformed, expired, bad signature) is collapsed into the same 401 body so
// the response leaks nothing about why verification failed. A missing header
// is the only distinct case.
func Auth(cfg *config.AppConfig, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.VerifyToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// A subject that no longer exists is a token problem; anything else
		// is a storage problem and must not masquerade as one.
		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.Set(currentUserKey, user)

		c.Next()
	}
}

// CurrentUser returns the user attached by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
