package middleware

import (
	"github.com/LSkevi/PieTracker/internal/identity"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "userID"

// Identity resolves the caller's user id and stores it in the context.
// It never aborts: a request with no usable credentials proceeds as the
// anonymous user.
func Identity(r *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := r.Resolve(c.GetHeader("Authorization"), c.GetHeader("X-User-Id"))
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// UserID returns the resolved user id for the request, or empty when
// the identity middleware did not run.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserKey)
}
