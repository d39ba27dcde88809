package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-Id"

// RequestID tags every request with an id, honoring one supplied by the
// caller so ids survive proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.Writer.Header().Get(headerRequestID)
}
