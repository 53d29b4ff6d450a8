package middleware

import (
	"net/http"
	"strings"

	"bimdb/internal/authz"
	"bimdb/internal/httpapi/models"
	"bimdb/internal/httpapi/repository"
	"bimdb/internal/httpapi/service"
	"bimdb/internal/session"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// Identity resolves the request's identity and stores it in the
// context. The session cookie wins; a Bearer access token is the
// fallback for API clients. Either way the user row is reloaded from
// the store, so a role change applies to live sessions immediately.
// Requests without credentials pass through with no identity set —
// public routes stay public, protected groups 401 further down.
func Identity(userRepo repository.UserRepository, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := session.GetLoginUserID(c)

		if userID == "" {
			if token := bearerToken(c); token != "" {
				if id, err := authService.ValidateAccessToken(token); err == nil {
					userID = id
				}
			}
		}

		if userID != "" {
			if user, err := userRepo.FindByID(userID); err == nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// CurrentUser returns the resolved identity, or nil when the request
// is anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(currentUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireCan gates a route group on one evaluator action, for actions
// that are not about a particular record (tag management pages, admin
// user views). Record-level checks stay in the services, which load
// the record first.
func RequireCan(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !authz.Can(user, action, nil) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
