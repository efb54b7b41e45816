package middleware

import (
	"errors"
	"net/http"
	"strings"

	"campusconnect/internal/model"
	"campusconnect/internal/pkg"
	"campusconnect/internal/repository/mysql"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "user_email"
	ContextRoleKey   = "user_role"
)

// Authenticate is the first three steps of the guard chain: token present,
// token verified, role resolved. The role always comes from the store; the
// token's embedded role claim may be stale and is ignored. A subject the
// store has never seen is provisioned with role USER on first sight.
func Authenticate(users *mysql.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - No token provided"})
			return
		}

		claims, err := pkg.Parse(tokenStr)
		if err != nil {
			if errors.Is(err, pkg.ErrTokenMalformed) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token format"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		role := model.RoleUser
		if user, err := users.Provision(claims.UserID, claims.Email); err == nil {
			role = user.Role
		}
		// Store failure degrades to USER instead of failing the request,
		// keeping read paths available.

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

// RequireAdmin is guard step four. It re-fetches the role from the store
// rather than reading the resolved request context.
func RequireAdmin(users *mysql.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)

		role, err := users.RoleByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error in admin check"})
			return
		}
		if role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admin access required"})
			return
		}
		c.Next()
	}
}

// OptionalAuthenticate resolves an actor when a valid token is attached
// but never rejects. Public list routes use it for the admin status
// override.
func OptionalAuthenticate(users *mysql.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		claims, err := pkg.Parse(tokenStr)
		if err != nil {
			c.Next()
			return
		}
		role := model.RoleUser
		if user, err := users.Provision(claims.UserID, claims.Email); err == nil {
			role = user.Role
		}
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// UserID returns the authenticated subject id, zero when unauthenticated.
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

// Role returns the store-resolved role for this request.
func Role(c *gin.Context) string {
	if v, ok := c.Get(ContextRoleKey); ok {
		if role, ok2 := v.(string); ok2 {
			return role
		}
	}
	return ""
}
