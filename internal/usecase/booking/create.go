package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sanayicim/sanayicim-api/internal/audit"
	domain "github.com/sanayicim/sanayicim-api/internal/domain/booking"
	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/infra/lock"
	"github.com/sanayicim/sanayicim-api/internal/models"
	"github.com/sanayicim/sanayicim-api/internal/timeutil"
	"github.com/sanayicim/sanayicim-api/internal/token"
)

type CreateAppointmentInput struct {
	ShopID    uint
	ServiceID uint
	Date      string // 2006-01-02
	StartTime string // 15:04
	EndTime   string // 15:04
}

type CreateAppointment struct {
	repo  domain.Repository
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	locks lock.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		locks: locks,
		audit: audit,
	}
}

// Execute books an appointment for the acting customer. The overlap check and
// the insert run under a per-(shop, date) lock inside one transaction, so
// concurrent requests for intersecting intervals cannot both succeed.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor *token.Payload,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if actor == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}
	if actor.Role != models.RoleCustomer {
		return nil, httperr.ErrBusiness("customers_only")
	}

	if in.ShopID == 0 || in.ServiceID == 0 || in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	date, err := timeutil.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := timeutil.ParseDateTime(in.Date, in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	end, err := timeutil.ParseDateTime(in.Date, in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("shop_not_found")
		}
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, shop.ID, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	release, err := uc.locks.Acquire(ctx, shop.ID, date)
	if err != nil {
		return nil, err
	}
	defer release()

	ap := &models.Appointment{
		ShopID:     shop.ID,
		ServiceID:  svc.ID,
		CustomerID: actor.ID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.audit.Dispatch(audit.Event{
				ShopID: &shop.ID,
				UserID: &actor.ID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"start": start,
					"end":   end,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   &shop.ID,
		UserID:   &actor.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
