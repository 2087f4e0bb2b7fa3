package booking

import (
	"context"
	"time"

	"github.com/sanayicim/sanayicim-api/internal/models"
)

type Repository interface {
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetService(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) (*models.Service, error)

	// CreateAppointmentIfFree runs the half-open overlap check and the insert
	// inside one transaction. Returns a time_conflict business error when the
	// requested interval intersects an existing appointment on the same shop
	// and date.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		shopID uint,
		date time.Time,
	) ([]models.Appointment, error)
}
