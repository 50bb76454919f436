package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/models"
	"github.com/lebarbier/salon-api/internal/timezone"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateSettingsRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes,omitempty"`
}

// GET /api/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	var salon models.Salon
	if err := h.db.Order("id ASC").First(&salon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon non configuré.")
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Erreur lors du chargement de la configuration.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// PATCH /api/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var salon models.Salon
	if err := h.db.Order("id ASC").First(&salon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon non configuré.")
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Erreur lors du chargement de la configuration.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inconnue.")
			return
		}
		salon.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "L'antécédence minimale doit être positive ou nulle (en minutes).")
			return
		}
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Erreur lors de l'enregistrement de la configuration.")
		return
	}

	c.JSON(http.StatusOK, salon)
}
