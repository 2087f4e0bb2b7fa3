package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanayicim/sanayicim-api/internal/audit"
	"github.com/sanayicim/sanayicim-api/internal/dto"
	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/httpresp"
	"github.com/sanayicim/sanayicim-api/internal/middleware"
	"github.com/sanayicim/sanayicim-api/internal/models"
)

type ShopHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewShopHandler(db *gorm.DB, audit *audit.Dispatcher) *ShopHandler {
	return &ShopHandler{db: db, audit: audit}
}

type CreateShopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// List returns every shop with its services, availability windows and the
// owner's public identity. Unauthenticated by design.
func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.
		Preload("Services").
		Preload("Availability").
		Preload("Owner").
		Order("created_at DESC").
		Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed to list shops")
		return
	}

	out := make([]dto.ShopDetail, 0, len(shops))
	for _, shop := range shops {
		out = append(out, dto.NewShopDetail(shop))
	}

	httpresp.OK(c, out)
}

func (h *ShopHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid shop id")
		return
	}

	var shop models.Shop
	if err := h.db.
		Preload("Services").
		Preload("Availability").
		Preload("Owner").
		First(&shop, uint(id)).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "shop not found")
			return
		}
		httperr.Internal(c, "failed to get shop")
		return
	}

	httpresp.OK(c, dto.NewShopDetail(shop))
}

func (h *ShopHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "shop name is required")
		return
	}

	shop := models.Shop{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		OwnerID:     actor.ID,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed to create shop")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   &shop.ID,
		UserID:   &actor.ID,
		Action:   "shop_created",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	httpresp.Created(c, shop)
}
