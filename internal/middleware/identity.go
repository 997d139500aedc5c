package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

// UserIDHeader carries the authenticated user id, set by the auth layer in
// front of this service. Authentication itself is not this service's job.
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

// Identity requires a valid user id header on every request and stores it
// in the request context for handlers.
func Identity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing user identity"},
			)
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid user identity"},
			)
			return
		}

		c.Set(userIDKey, id)

		c.Next()
	}
}

// UserID returns the authenticated user id stored by Identity.
func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}
