package delivery

import (
	"net/http"
	"strings"

	authdomain "marketplace-backend/internal/auth/domain"
	"marketplace-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// ClaimsFromContext returns the verified token claims attached by
// AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*authdomain.TokenClaims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*authdomain.TokenClaims)
	return claims, ok
}

// AuthMiddleware rejects requests without a valid bearer token. On success
// the embedded claims are attached to the request context; no store lookup
// happens here.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminMiddleware requires the admin role. It must run after AuthMiddleware;
// a request reaching it without claims is rejected as unauthenticated.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
			c.Abort()
			return
		}

		if claims.Role != authdomain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied, admin rights required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
