package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/session"
	"github.com/sanayicim/sanayicim-api/internal/token"
)

const ContextUser = "authUser"

// RequireUser resolves the cookie-borne identity and aborts with 401 when no
// valid token is present.
func RequireUser(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := session.FromRequest(c.Request, tokens)
		if payload == nil {
			httperr.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUser, payload)
		c.Next()
	}
}

// RequireRole runs after RequireUser and rejects identities with a different
// role. The token's embedded role is trusted for its lifetime.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			httperr.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		if user.Role != role {
			httperr.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *token.Payload {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	payload, ok := v.(*token.Payload)
	if !ok {
		return nil
	}
	return payload
}
