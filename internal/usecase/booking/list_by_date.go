package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/sanayicim/sanayicim-api/internal/domain/booking"
	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/models"
	"github.com/sanayicim/sanayicim-api/internal/timeutil"
	"github.com/sanayicim/sanayicim-api/internal/token"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

// Execute returns a shop's appointments for one day, for the owner of that
// shop only.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	actor *token.Payload,
	shopID uint,
	dateStr string,
) ([]models.Appointment, error) {

	if actor == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}
	if actor.Role != models.RoleOwner {
		return nil, httperr.ErrBusiness("owners_only")
	}

	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	shop, err := uc.repo.GetShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_your_shop")
		}
		return nil, err
	}
	if shop.OwnerID != actor.ID {
		return nil, httperr.ErrBusiness("not_your_shop")
	}

	return uc.repo.ListAppointmentsForDay(ctx, shop.ID, date)
}
