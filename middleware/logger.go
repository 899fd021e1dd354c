package middleware

import (
	"log"
	"time"

	"rental-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Logger tags every request with an id (reusing an incoming X-Request-ID) and logs
// method, path, status and latency once the handler returns.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(utils.RequestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		prefix := "⬅️"
		if status >= 500 {
			prefix = "❌"
		} else if status >= 400 {
			prefix = "⚠️"
		}
		log.Printf("%s %s %s %s %d %s [%s]", prefix, c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, time.Since(start), id)
	}
}
