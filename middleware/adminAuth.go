package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	adminRepo "washq/database/repository/admin"
	"washq/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdminAuthMiddleware gates admin-only routes. It validates the Bearer JWT,
// then checks the session token hash against the Redis auth cache with a
// Mongo fallback, so a Redis outage degrades to DB lookups instead of
// locking the admin out.
func AdminAuthMiddleware(repo adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + adminID

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if cache := utils.GetAuthCacheClient(); cache != nil {
			cachedHash, err := cache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = cache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("adminID", adminID)
				c.Next()
				return
			} else if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		// Cache miss: verify against the stored token hash.
		admin, err := repo.GetByID(adminID)
		if err != nil || admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if admin.TokenHash == "" || admin.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if cache := utils.GetAuthCacheClient(); cache != nil {
			_ = cache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
