package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/httpresp"
	"github.com/lebarbier/salon-api/internal/middleware"
	"github.com/lebarbier/salon-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (surface admin)
// ======================================================

type AdminAppointmentHandler struct {
	db *gorm.DB

	listByDateUC  *booking.ListAppointmentsByDate
	listByMonthUC *booking.ListAppointmentsByMonth
	setStatusUC   *booking.SetAppointmentStatus
	deleteUC      *booking.DeleteAppointment
}

func NewAdminAppointmentHandler(
	db *gorm.DB,
	listByDateUC *booking.ListAppointmentsByDate,
	listByMonthUC *booking.ListAppointmentsByMonth,
	setStatusUC *booking.SetAppointmentStatus,
	deleteUC *booking.DeleteAppointment,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		db:            db,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		setStatusUC:   setStatusUC,
		deleteUC:      deleteUC,
	}
}

// ======================================================
// LIST BY DATE
// ======================================================

// GET /api/admin/appointments?date=AAAA-MM-JJ[&barber_id=]
func (h *AdminAppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Le paramètre date est obligatoire.")
		return
	}

	date, err := parseDateInSalon(h.db, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}

	var barberID uint
	if s := c.Query("barber_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbier invalide.")
			return
		}
		barberID = uint(id)
	}

	appointments, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erreur lors du chargement de l'agenda.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// LIST BY MONTH
// ======================================================

// GET /api/admin/appointments/month?year=&month=[&barber_id=]
func (h *AdminAppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Année et mois sont obligatoires.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Année invalide.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mois invalide.")
		return
	}

	var barberID uint
	if s := c.Query("barber_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbier invalide.")
			return
		}
		barberID = uint(id)
	}

	appointments, err := h.listByMonthUC.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erreur lors du chargement de l'agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// SET STATUS
// ======================================================

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/admin/appointments/:id/status
func (h *AdminAppointmentHandler) SetStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corps de requête invalide.")
		return
	}

	ap, err := h.setStatusUC.Execute(
		c.Request.Context(),
		uint(id),
		schedule.Status(req.Status),
		adminID,
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

// DELETE /api/admin/appointments/:id
func (h *AdminAppointmentHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), adminID); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
