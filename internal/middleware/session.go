package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the session ID. Clients send it back on every
// request; a missing or malformed ID starts a fresh session.
const SessionHeader = "X-Session-Id"

// Session attaches a per-session ID to the request context and echoes
// it in the response, so cart state is scoped to one client instead of
// living in process-wide globals.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		c.Set("sessionID", id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}
