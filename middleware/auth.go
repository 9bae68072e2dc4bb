package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sanjeevika-shop/config"
	"sanjeevika-shop/models"
	"sanjeevika-shop/utils"
)

const revokedTokenKeyPrefix = "revoked_token:"

// IsTokenRevoked reports whether the token was denylisted by a logout. With no
// Redis the denylist is disabled and tokens stay valid until expiry.
func IsTokenRevoked(ctx context.Context, token string) bool {
	if config.RedisClient == nil {
		return false
	}
	n, err := config.RedisClient.Exists(ctx, revokedTokenKeyPrefix+token).Result()
	return err == nil && n > 0
}

// RevokeToken puts the token on the denylist for the remaining lifetime given.
func RevokeToken(ctx context.Context, token string, ttlSeconds int64) {
	if config.RedisClient == nil || ttlSeconds <= 0 {
		return
	}
	config.RedisClient.Set(ctx, revokedTokenKeyPrefix+token, "1", time.Duration(ttlSeconds)*time.Second)
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		if IsTokenRevoked(c.Request.Context(), tokenParts[1]) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Token has been revoked",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("token", tokenParts[1])
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		if role != "admin" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
