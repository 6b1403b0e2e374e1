package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Audit logs every mutating request with the resolved user id after the
// handler runs. Reads stay quiet; gin.Logger already covers them.
func Audit() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}

		log.Printf("audit user=%s %s %s status=%d took=%s",
			UserID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
		)
	}
}
