package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/utils"
)

// JWTMiddleware authenticates admin requests with bearer session tokens.
type JWTMiddleware struct{}

func NewJWTMiddleware() *JWTMiddleware {
	return &JWTMiddleware{}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group on a role. A super_admin passes every
// gate; otherwise the authenticated role must match exactly.
func RequireRole(required models.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.AdminRole(c.GetString("role"))
		if role != required && role != models.RoleSuperAdmin {
			utils.Error(c, 403, "FORBIDDEN", "Insufficient privileges")
			c.Abort()
			return
		}
		c.Next()
	}
}
