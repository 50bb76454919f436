package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	db *gorm.DB
	uc *booking.GetDaySlots
}

func NewAvailabilityHandler(db *gorm.DB, uc *booking.GetDaySlots) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, uc: uc}
}

// Get renvoie la grille des créneaux d'un barbier pour une date.
// GET /api/public/availability?barber_id=&date=
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")

	if barberIDStr == "" {
		httperr.BadRequest(c, "missing_barber_id", "Le paramètre barber_id est obligatoire.")
		return
	}
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Le paramètre date est obligatoire.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbier invalide.")
		return
	}

	date, err := parseDateInSalon(h.db, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide (format attendu : AAAA-MM-JJ).")
		return
	}

	grid, err := h.uc.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, grid)
}
