package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// HeaderXRequestID is the header carrying the request ID.
const HeaderXRequestID = "X-Request-ID"

// ContextRequestID is the gin context key for the request ID.
const ContextRequestID = "request_id"

// RequestID returns a middleware that ensures every request has an ID.
// An incoming X-Request-ID header is honored; otherwise a new one is
// generated. The ID is stored in the gin context and echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderXRequestID)
		if id == "" {
			id = generateRequestID()
		}

		c.Set(ContextRequestID, id)
		c.Header(HeaderXRequestID, id)
		c.Next()
	}
}

// generateRequestID generates a random 16-byte hex request ID.
func generateRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}
