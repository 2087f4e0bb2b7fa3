// Package session resolves an authenticated identity from an inbound request.
// It is the single authorization gateway consulted by every protected
// handler; it reads request state only and never touches the store.
package session

import (
	"net/http"
	"strings"

	"github.com/sanayicim/sanayicim-api/internal/token"
)

// FromRequest extracts the sanayicim_token cookie from the raw Cookie header
// and verifies it. Returns nil when the header is absent, the cookie is
// absent, or verification fails.
func FromRequest(r *http.Request, tokens *token.Service) *token.Payload {
	raw := r.Header.Get("Cookie")
	if raw == "" {
		return nil
	}

	value := ""
	for _, part := range strings.Split(raw, "; ") {
		if strings.HasPrefix(part, token.CookieName+"=") {
			value = part[strings.Index(part, "=")+1:]
			break
		}
	}
	if value == "" {
		return nil
	}

	payload, err := tokens.Verify(value)
	if err != nil {
		return nil
	}
	return payload
}
