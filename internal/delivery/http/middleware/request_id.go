package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID when it looks sane and mints a
// UUID otherwise. The id is stored under "RequestID" and echoed back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set("RequestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
