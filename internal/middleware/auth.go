package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
)

// userContextKey is the gin context key holding the resolved user.
const userContextKey = "currentUser"

// UserResolver resolves a bearer token to a persisted user.
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*authModel.User, error)
}

// Auth returns a middleware that validates the Authorization header and
// stores the resolved user in the request context. Authorization decisions
// are always made against the re-resolved user, never a client-supplied id.
func Auth(resolver UserResolver, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthenticated(c, "authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthenticated(c, "invalid authorization header format")
			return
		}

		user, err := resolver.ResolveToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Debugw("token resolution failed", "path", c.Request.URL.Path, "error", err)
			unauthenticated(c, "invalid or expired token")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the current user holds ADMIN or
// SUPERADMIN. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			unauthenticated(c, "authentication required")
			return
		}
		if !user.Role.IsAdmin() {
			forbidden(c, "admin role required")
			return
		}
		c.Next()
	}
}

// RequireSuperadmin aborts with 403 unless the current user is SUPERADMIN.
// Must run after Auth.
func RequireSuperadmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			unauthenticated(c, "authentication required")
			return
		}
		if !user.Role.CanPublish() {
			forbidden(c, "superadmin role required")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil when Auth did not run.
func CurrentUser(c *gin.Context) *authModel.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*authModel.User)
	if !ok {
		return nil
	}
	return user
}

// SetCurrentUser stores the user in the context. Exposed for handler tests.
func SetCurrentUser(c *gin.Context, user *authModel.User) {
	c.Set(userContextKey, user)
}

func unauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"code": "UNAUTHENTICATED", "message": message},
	})
}

func forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": gin.H{"code": "FORBIDDEN", "message": message},
	})
}
