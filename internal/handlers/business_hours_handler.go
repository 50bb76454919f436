package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/models"
)

type BusinessHoursHandler struct {
	db *gorm.DB
}

func NewBusinessHoursHandler(db *gorm.DB) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db}
}

type BusinessDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Open      bool   `json:"open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type BusinessHoursUpdateRequest struct {
	Days []BusinessDayConfig `json:"days" binding:"required"`
}

// GET /api/admin/business-hours
func (h *BusinessHoursHandler) Get(c *gin.Context) {
	var hours []models.BusinessHours
	if err := h.db.
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_business_hours", "Erreur lors du chargement des horaires.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// PUT /api/admin/business-hours — remplacement complet de la semaine
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	today := time.Now()
	for _, d := range req.Days {
		if !d.Open {
			continue
		}
		start, okStart := schedule.ParseClock(today, d.OpenTime)
		end, okEnd := schedule.ParseClock(today, d.CloseTime)
		if !okStart || !okEnd || !start.Before(end) {
			httperr.BadRequest(c, "invalid_hours", "Horaires invalides (format HH:MM, ouverture avant fermeture).")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.BusinessHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.BusinessHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.BusinessHours{
				Weekday:   d.Weekday,
				Open:      d.Open,
				OpenTime:  d.OpenTime,
				CloseTime: d.CloseTime,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_business_hours", "Erreur lors de l'enregistrement des horaires.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
