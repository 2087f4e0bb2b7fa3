package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanayicim/sanayicim-api/internal/audit"
	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/httpresp"
	"github.com/sanayicim/sanayicim-api/internal/middleware"
	"github.com/sanayicim/sanayicim-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

type CreateServiceRequest struct {
	ShopID          uint    `json:"shop_id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "shop_id, name and a positive duration_minutes are required")
		return
	}

	// An unknown shop and someone else's shop get the same answer.
	var shop models.Shop
	if err := h.db.First(&shop, req.ShopID).Error; err != nil || shop.OwnerID != actor.ID {
		httperr.Forbidden(c, "shop not found or not owned by you")
		return
	}

	svc := models.Service{
		ShopID:          shop.ID,
		Name:            req.Name,
		MinPrice:        req.MinPrice,
		MaxPrice:        req.MaxPrice,
		DurationMinutes: req.DurationMinutes,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed to create service")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   &shop.ID,
		UserID:   &actor.ID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.Created(c, svc)
}
