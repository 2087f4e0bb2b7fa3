package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sanayicim/sanayicim-api/internal/models"
	"github.com/sanayicim/sanayicim-api/internal/session"
	"github.com/sanayicim/sanayicim-api/internal/token"
)

// UserPayloadHeader carries the resolved identity to page handlers as
// base64(JSON(payload)), so non-ASCII names survive header encoding.
const UserPayloadHeader = "X-User-Payload"

const (
	dashboardPrefix      = "/dashboard"
	ownerDashboardPrefix = "/dashboard/owner"
)

// PageGate protects page navigations. It is a pure function of (path, cookie):
// unauthenticated requests under /dashboard redirect to /login, non-owner
// requests under /dashboard/owner redirect to /, everything else proceeds with
// the identity forwarded via UserPayloadHeader when one was resolved.
func PageGate(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		payload := session.FromRequest(c.Request, tokens)

		if strings.HasPrefix(path, dashboardPrefix) {
			if payload == nil {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			if strings.HasPrefix(path, ownerDashboardPrefix) && payload.Role != models.RoleOwner {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
		}

		if payload != nil {
			if encoded, err := encodePayload(payload); err == nil {
				c.Request.Header.Set(UserPayloadHeader, encoded)
			}
		}

		c.Next()
	}
}

func encodePayload(p *token.Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodePayloadHeader reverses encodePayload for page handlers.
func DecodePayloadHeader(encoded string) (*token.Payload, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	var p token.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
