package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanayicim/sanayicim-api/internal/httperr"
	"github.com/sanayicim/sanayicim-api/internal/httpresp"
	"github.com/sanayicim/sanayicim-api/internal/middleware"
	ucBooking "github.com/sanayicim/sanayicim-api/internal/usecase/booking"
)

type AppointmentHandler struct {
	createUC *ucBooking.CreateAppointment
	listUC   *ucBooking.ListAppointmentsByDate
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	listUC *ucBooking.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

type CreateAppointmentRequest struct {
	ShopID    uint   `json:"shop_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // 2006-01-02
	StartTime string `json:"start_time" binding:"required"` // 15:04
	EndTime   string `json:"end_time" binding:"required"`   // 15:04
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "shop_id, service_id, date, start_time and end_time are required")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), actor, ucBooking.CreateAppointmentInput{
		ShopID:    req.ShopID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ListByDate returns one day of appointments for a shop the actor owns.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	shopIDStr := c.Query("shop_id")
	dateStr := c.Query("date")
	if shopIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "shop_id and date are required")
		return
	}

	shopID, err := strconv.ParseUint(shopIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid shop_id")
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), actor, uint(shopID), dateStr)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "unauthenticated"):
		httperr.Unauthorized(c, "authentication required")
	case httperr.IsBusiness(err, "customers_only"):
		httperr.Forbidden(c, "only customers can book appointments")
	case httperr.IsBusiness(err, "owners_only"), httperr.IsBusiness(err, "not_your_shop"):
		httperr.Forbidden(c, "shop not found or not owned by you")
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "all appointment fields are required")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid date or time")
	case httperr.IsBusiness(err, "invalid_time_range"):
		httperr.BadRequest(c, "start_time must be before end_time")
	case httperr.IsBusiness(err, "shop_not_found"):
		httperr.NotFound(c, "shop not found")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service not found")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "the selected time slot is taken, please pick another time")
	default:
		httperr.Internal(c, "failed to create appointment")
	}
}
