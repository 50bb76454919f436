package schedule

import (
	"time"

	"github.com/lebarbier/salon-api/internal/models"
)

const (
	// Fenêtre par défaut quand aucun horaire n'est configuré pour le jour.
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"

	// Granularité fixe des créneaux.
	SlotInterval = 30 * time.Minute
)

// Window est la fenêtre d'ouverture résolue pour une date donnée,
// exprimée en heure locale du salon.
type Window struct {
	Open  bool      `json:"open"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseClock projette une heure "15:04" sur la date donnée, dans la
// location de la date.
func ParseClock(date time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}

// ResolveWindow détermine la fenêtre d'ouverture du jour :
// horaires configurés et fermés → fenêtre fermée ; configurés et ouverts →
// leurs bornes ; absents → 09:00–18:00.
func ResolveWindow(date time.Time, wh *models.BusinessHours) Window {
	if wh != nil {
		if !wh.Open {
			return Window{Open: false}
		}
		start, okStart := ParseClock(date, wh.OpenTime)
		end, okEnd := ParseClock(date, wh.CloseTime)
		if okStart && okEnd && start.Before(end) {
			return Window{Open: true, Start: start, End: end}
		}
		// bornes illisibles : on retombe sur la fenêtre par défaut
	}

	start, _ := ParseClock(date, DefaultOpenTime)
	end, _ := ParseClock(date, DefaultCloseTime)
	return Window{Open: true, Start: start, End: end}
}
