package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanayicim/sanayicim-api/internal/token"
)

func newGateEngine(t *testing.T) (*gin.Engine, *token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.New("test-secret-key-at-least-32-chars-long", token.DefaultTTL)
	require.NoError(t, err)

	r := gin.New()
	r.Use(PageGate(tokens))

	echo := func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Header.Get(UserPayloadHeader))
	}
	r.GET("/", echo)
	r.GET("/dashboard", echo)
	r.GET("/dashboard/owner", echo)

	return r, tokens
}

func get(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", token.CookieName+"="+cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageGateRedirectsAnonymousDashboard(t *testing.T) {
	r, _ := newGateEngine(t)

	w := get(r, "/dashboard", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPageGateRedirectsInvalidToken(t *testing.T) {
	r, _ := newGateEngine(t)

	w := get(r, "/dashboard", "garbage")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPageGateRedirectsCustomerFromOwnerDashboard(t *testing.T) {
	r, tokens := newGateEngine(t)
	signed, err := tokens.Issue(token.Payload{ID: 1, Role: "customer"})
	require.NoError(t, err)

	w := get(r, "/dashboard/owner", signed)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestPageGateAllowsOwnerDashboard(t *testing.T) {
	r, tokens := newGateEngine(t)
	signed, err := tokens.Issue(token.Payload{ID: 1, Role: "owner"})
	require.NoError(t, err)

	w := get(r, "/dashboard/owner", signed)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageGateAllowsCustomerDashboard(t *testing.T) {
	r, tokens := newGateEngine(t)
	signed, err := tokens.Issue(token.Payload{ID: 1, Role: "customer"})
	require.NoError(t, err)

	w := get(r, "/dashboard", signed)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageGateForwardsPayloadHeader(t *testing.T) {
	r, tokens := newGateEngine(t)
	payload := token.Payload{ID: 9, Email: "ayşe@example.com", Name: "Ayşe Yılmaz", Role: "customer"}
	signed, err := tokens.Issue(payload)
	require.NoError(t, err)

	w := get(r, "/", signed)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Body.String())

	// Non-ASCII fields must survive the base64(JSON) header encoding.
	decoded, err := DecodePayloadHeader(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, payload, *decoded)
}

func TestPageGateAnonymousPublicPage(t *testing.T) {
	r, _ := newGateEngine(t)

	w := get(r, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
