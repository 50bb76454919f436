package handlers

import (
	"time"

	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/models"
	"github.com/lebarbier/salon-api/internal/timezone"
)

// Le timezone de référence vient de la configuration du salon ; à défaut,
// celui par défaut. Heure locale naïve partout, aucune conversion UTC.

func salonLocation(db *gorm.DB) *time.Location {
	var salon models.Salon
	if err := db.Order("id ASC").First(&salon).Error; err == nil && salon.Timezone != "" {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location(timezone.DefaultTimezone)
}

func parseDateInSalon(db *gorm.DB, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		salonLocation(db),
	)
}
