package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ArowuTest/community-center-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JWTAuthMiddleware guards admin routes with the bearer token issued at
// login. When enforce is false every request passes through.
func JWTAuthMiddleware(tokens *jwt.AdminTokenService, enforce bool, logger *zap.Logger) gin.HandlerFunc {
	if !enforce {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		const bearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header is missing", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Authorization header is required"})
			return
		}
		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Authorization header must start with Bearer "})
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(authHeader[len(bearerSchema):]))
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Invalid token"})
			}
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}
