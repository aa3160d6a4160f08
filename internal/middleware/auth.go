package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hirelane_backend/internal/auth"
	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/models"
	"hirelane_backend/pkg/contextkeys"
)

// AuthMiddleware rejects requests without a valid Bearer token and stores
// the resolved identity in both the gin context and the request context so
// the contextual logger carries it.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the identity when a token is present and
// carries on anonymously otherwise. A malformed token is still a hard 401;
// silently downgrading it would mask client bugs.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, ok := parseBearer(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRoles allows only the listed roles past. Must run after
// AuthMiddleware.
func RequireRoles(roles ...models.EmployerRole) gin.HandlerFunc {
	roleSet := make(map[models.EmployerRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(string(contextkeys.RoleKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(models.EmployerRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role type"})
				return
			}
			role = models.EmployerRole(roleStr)
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

func parseBearer(c *gin.Context, secret string) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := auth.ParseToken(tokenStr, secret)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(string(contextkeys.EmployerIDKey), claims.EmployerID)
	c.Set(string(contextkeys.RoleKey), claims.Role)

	ctx := logger.WithEmployerID(c.Request.Context(), claims.EmployerID)
	c.Request = c.Request.WithContext(ctx)
}
