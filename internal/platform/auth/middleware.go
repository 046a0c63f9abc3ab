package auth

import (
	"net/http"
	"strings"

	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates JWT access tokens
func AuthMiddleware(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpPlatform.RespondWithError(c, 401, "UNAUTHORIZED", "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpPlatform.RespondWithError(c, 401, "UNAUTHORIZED", "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			httpPlatform.RespondWithError(c, 401, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		// Set principal fields in context
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("employee_id", claims.EmployeeID)
		c.Next()
	}
}

// RequireRole aborts the request unless the authenticated principal's
// role is one of the allowed roles. Must run after AuthMiddleware.
func RequireRole(allowed ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := GetRole(c)
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}
		httpPlatform.RespondWithError(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role for this action")
		c.Abort()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	return userID.(string), true
}

// MustGetUserID extracts the user ID from context or writes a 401
// response and returns ok=false. Callers should return immediately
// when ok is false.
func MustGetUserID(c *gin.Context) (string, bool) {
	userID, exists := GetUserID(c)
	if !exists || userID == "" {
		httpPlatform.RespondWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return "", false
	}
	return userID, true
}

// GetRole extracts the principal's role from context
func GetRole(c *gin.Context) (Role, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}
	r, ok := role.(Role)
	return r, ok
}

// GetEmployeeID extracts the principal's linked employee ID, if any
func GetEmployeeID(c *gin.Context) (string, bool) {
	id, exists := c.Get("employee_id")
	if !exists {
		return "", false
	}
	s, ok := id.(string)
	return s, ok && s != ""
}
