package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"content-dashboard/internal/domain"
	"content-dashboard/internal/session"
)

// UserKey is the context key for the authenticated user.
const UserKey = "user"

// Auth returns a Gin middleware that requires the request to carry the
// current session's bearer token. Routing between the logged-out and
// logged-in surfaces is driven purely by session presence.
func Auth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		user, ok := sessions.Authenticate(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return header[len(prefix):]
	}
	return ""
}

// GetUser retrieves the authenticated user from the gin context.
func GetUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(UserKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
