package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/auth"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
)

const (
	ctxUserIDKey  = "userID"
	ctxRoleKey    = "role"
	ctxPremiumKey = "premium"
)

// AuthMiddleware validates the bearer token and exposes the caller's
// identity {id, role, premium} on the gin context.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Set(ctxPremiumKey, claims.Premium)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles allows only the listed roles through.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ctxRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role type"})
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "" when unauthenticated.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetRole returns the authenticated user's role.
func GetRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(ctxRoleKey)
	if !exists {
		return ""
	}
	if role, ok := roleVal.(models.UserRole); ok {
		return role
	}
	if s, ok := roleVal.(string); ok {
		return models.UserRole(s)
	}
	return ""
}

// IsPremium reports whether the caller's token carries premium status.
func IsPremium(c *gin.Context) bool {
	val, exists := c.Get(ctxPremiumKey)
	if !exists {
		return false
	}
	premium, ok := val.(bool)
	return ok && premium
}
