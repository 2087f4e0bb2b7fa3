package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanayicim/sanayicim-api/internal/audit"
	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/httpresp"
	"github.com/sanayicim/sanayicim-api/internal/middleware"
	"github.com/sanayicim/sanayicim-api/internal/models"
	"github.com/sanayicim/sanayicim-api/internal/timeutil"
)

type AvailabilityHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAvailabilityHandler(db *gorm.DB, audit *audit.Dispatcher) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, audit: audit}
}

type CreateAvailabilityRequest struct {
	ShopID    uint   `json:"shop_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // 2006-01-02
	StartTime string `json:"start_time" binding:"required"` // 15:04
	EndTime   string `json:"end_time" binding:"required"`   // 15:04
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "shop_id, date, start_time and end_time are required")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, req.ShopID).Error; err != nil || shop.OwnerID != actor.ID {
		httperr.Forbidden(c, "shop not found or not owned by you")
		return
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid date")
		return
	}

	start, err := timeutil.ParseDateTime(req.Date, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid start_time")
		return
	}

	end, err := timeutil.ParseDateTime(req.Date, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid end_time")
		return
	}

	if !start.Before(end) {
		httperr.BadRequest(c, "start_time must be before end_time")
		return
	}

	window := models.Availability{
		ShopID:    shop.ID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}

	if err := h.db.Create(&window).Error; err != nil {
		httperr.Internal(c, "failed to create availability")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   &shop.ID,
		UserID:   &actor.ID,
		Action:   "availability_created",
		Entity:   "availability",
		EntityID: &window.ID,
	})

	httpresp.Created(c, window)
}
