package auth

import (
	"batepapo/backend/internal/sanitize"

	"github.com/gin-gonic/gin"
)

// UserHeader carries the caller's claimed participant name.
const UserHeader = "user"

const userKey = "user"

// UserMiddleware reads the user header, normalizes it, and stores it in the
// context. The claim is not trusted here: handlers check it against the
// presence registry. A missing header leaves an empty user.
func UserMiddleware(s *sanitize.Sanitizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if name := c.GetHeader(UserHeader); name != "" {
			c.Set(userKey, s.Text(name))
		}
		c.Next()
	}
}

// User returns the name set by UserMiddleware, or "" when none was sent.
func User(c *gin.Context) string {
	return c.GetString(userKey)
}
