package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanayicim/sanayicim-api/internal/middleware"
	"github.com/sanayicim/sanayicim-api/internal/token"
)

// PageHandler renders the server-side pages sitting behind the page gate. The
// gate forwards the resolved identity via the X-User-Payload header, so pages
// never re-verify the token.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, "home")
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	h.render(c, "login")
}

func (h *PageHandler) RegisterPage(c *gin.Context) {
	h.render(c, "register")
}

func (h *PageHandler) ShopsPage(c *gin.Context) {
	h.render(c, "shops")
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	h.render(c, "dashboard")
}

func (h *PageHandler) OwnerDashboard(c *gin.Context) {
	h.render(c, "dashboard_owner")
}

func (h *PageHandler) render(c *gin.Context, page string) {
	var user *token.Payload
	if encoded := c.Request.Header.Get(middleware.UserPayloadHeader); encoded != "" {
		if decoded, err := middleware.DecodePayloadHeader(encoded); err == nil {
			user = decoded
		}
	}

	c.HTML(http.StatusOK, "base", gin.H{
		"Page": page,
		"User": user,
	})
}
