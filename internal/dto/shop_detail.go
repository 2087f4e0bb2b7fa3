package dto

import (
	"time"

	"github.com/sanayicim/sanayicim-api/internal/models"
)

// ShopOwner exposes only the owner's public fields on shop reads.
type ShopOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ShopDetail is the denormalized shop payload returned by the public read
// endpoints: the shop with its services, availability windows, and the
// owner's public identity.
type ShopDetail struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Location     string                `json:"location"`
	OwnerID      uint                  `json:"owner_id"`
	Owner        ShopOwner             `json:"owner"`
	Services     []models.Service      `json:"services"`
	Availability []models.Availability `json:"availability"`
	CreatedAt    time.Time             `json:"created_at"`
}

func NewShopDetail(shop models.Shop) ShopDetail {
	services := shop.Services
	if services == nil {
		services = []models.Service{}
	}
	availability := shop.Availability
	if availability == nil {
		availability = []models.Availability{}
	}

	return ShopDetail{
		ID:          shop.ID,
		Name:        shop.Name,
		Description: shop.Description,
		Location:    shop.Location,
		OwnerID:     shop.OwnerID,
		Owner: ShopOwner{
			Name:  shop.Owner.Name,
			Email: shop.Owner.Email,
		},
		Services:     services,
		Availability: availability,
		CreatedAt:    shop.CreatedAt,
	}
}
