package middleware

import (
	"net/http"
	"strings"

	"resort-backend/models"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const clientContextKey = "currentClient"

// RequireAuth validates the bearer token and loads the client fresh from the
// database, so revoked accounts and role changes apply to in-flight tokens.
func RequireAuth(db *gorm.DB, issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		var client models.Client
		if err := db.First(&client, claims.ClientID).Error; err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		c.Set(clientContextKey, &client)
		c.Next()
	}
}

// CurrentClient returns the authenticated client set by RequireAuth.
func CurrentClient(c *gin.Context) (*models.Client, bool) {
	v, ok := c.Get(clientContextKey)
	if !ok {
		return nil, false
	}
	client, ok := v.(*models.Client)
	return client, ok
}

func requireRole(check func(models.Role) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, ok := CurrentClient(c)
		if !ok || !check(client.Role) {
			utils.JSONError(c, http.StatusForbidden, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates routes to the admin role.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(models.Role.IsAdmin, "Access denied: Admin rights required")
}

// RequireStaff gates routes to exactly the staff role.
func RequireStaff() gin.HandlerFunc {
	return requireRole(models.Role.IsStaff, "Access denied: Staff rights required")
}

// RequireAdminOrStaff gates routes to elevated roles; admin passes.
func RequireAdminOrStaff() gin.HandlerFunc {
	return requireRole(models.Role.IsAdminOrStaff, "Access denied: Admin or staff rights required")
}
