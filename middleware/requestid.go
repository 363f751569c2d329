package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request identifier is stored under.
const RequestIDKey = "request_id"

// RequestID tags every request with an identifier for log correlation,
// honoring one supplied by the client.
func RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDKey, id)
	c.Header("X-Request-ID", id)
	c.Next()
}
