package middleware

import (
	"net/http"
	"strings"
	"swiftconnect_backend/internal/auth"
	"swiftconnect_backend/internal/logger"
	"swiftconnect_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст запроса
		ctx := logger.WithStaffID(c.Request.Context(), claims.StaffID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("staffID", claims.StaffID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles - middleware для проверки роли из JWT claims
func RequireRoles(roles ...models.StaffRole) gin.HandlerFunc {
	roleSet := make(map[models.StaffRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := roleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}

		c.Next()
	}
}

func roleFromContext(c *gin.Context) (models.StaffRole, bool) {
	roleVal, exists := c.Get("role")
	if !exists {
		return "", false
	}

	role, ok := roleVal.(models.StaffRole)
	if !ok {
		// Роль могла попасть в контекст строкой
		roleStr, isString := roleVal.(string)
		if !isString {
			return "", false
		}
		role = models.StaffRole(roleStr)
	}
	return role, true
}
