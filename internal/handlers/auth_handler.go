package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sanayicim/sanayicim-api/internal/audit"
	"github.com/sanayicim/sanayicim-api/internal/config"
	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/httpresp"
	"github.com/sanayicim/sanayicim-api/internal/middleware"
	"github.com/sanayicim/sanayicim-api/internal/models"
	"github.com/sanayicim/sanayicim-api/internal/token"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	tokens *token.Service
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, tokens *token.Service, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: tokens, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "name, email, password and role are required")
		return
	}

	if req.Role != models.RoleOwner && req.Role != models.RoleCustomer {
		httperr.BadRequest(c, "role must be owner or customer")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "registration failed")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email is already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "registration failed")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "registration failed")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		// Unknown email and wrong password produce the same answer.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid email or password")
			return
		}
		httperr.Internal(c, "login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid email or password")
		return
	}

	payload := token.Payload{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}

	signed, err := h.tokens.Issue(payload)
	if err != nil {
		httperr.Internal(c, "login failed")
		return
	}

	h.setTokenCookie(c, signed, int(h.tokens.TTL().Seconds()))
	httpresp.OK(c, payload)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		httperr.Unauthorized(c, "authentication required")
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(
		token.CookieName,
		value,
		maxAge,
		"/",
		"",
		h.config.IsProduction(),
		true, // httpOnly
	)
}
