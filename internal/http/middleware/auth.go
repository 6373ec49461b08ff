package middleware

import (
	"net/http"
	"strings"

	"tokrecharge_api/internal/domain"
	"tokrecharge_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key under which RequireAuth stores the
// authenticated admin user.
const ContextUserKey = "admin_user"

// RequireAuth validates the Authorization bearer token and stores the
// resolved user in the request context. Aborts with 401 otherwise.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireSuperAdmin gates routes reserved for the super_admin role. Must run
// after RequireAuth.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != domain.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "super admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (domain.AdminUser, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return domain.AdminUser{}, false
	}
	user, ok := v.(domain.AdminUser)
	return user, ok
}
