package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lebarbier/salon-api/internal/dto"
	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/middleware"
	"github.com/lebarbier/salon-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *booking.CreateAppointment
	cancelUC *booking.CancelAppointment
}

func NewBookingHandler(
	createUC *booking.CreateAppointment,
	cancelUC *booking.CancelAppointment,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// CREATE
// ======================================================

// POST /api/appointments
func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corps de requête invalide.")
		return
	}

	if err := req.Validate(); err != nil {
		mapBookingError(c, err)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		UserID:    userID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// CANCEL (owner only)
// ======================================================

// PATCH /api/appointments/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	ap, err := h.cancelUC.Execute(
		c.Request.Context(),
		uint(id),
		userID,
		role == middleware.RoleAdmin,
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
