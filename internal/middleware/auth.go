package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/techforing/project-tracking-api/internal/errors"
	"github.com/techforing/project-tracking-api/internal/token"
)

const contextKeyUserID = "user_id"

// RequireAuth rejects requests that do not carry a valid bearer access token.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractBearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(raw, token.TypeAccess)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// GetUserID retrieves the authenticated user ID from the request context.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(contextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
