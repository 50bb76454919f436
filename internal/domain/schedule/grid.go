package schedule

import (
	"time"

	"github.com/lebarbier/salon-api/internal/models"
)

// ===============================
// Slot grid
// ===============================

type Slot struct {
	Time      time.Time `json:"time"`
	Display   string    `json:"display"`
	Available bool      `json:"available"`
}

// OccupiedInterval est la plage semi-ouverte [Start, Start+durée) bloquée
// par un rendez-vous confirmé, annotée pour l'affichage.
type OccupiedInterval struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ServiceName string    `json:"service_name"`
	DurationMin int       `json:"duration_min"`
}

func (iv OccupiedInterval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

type SlotGrid struct {
	Date     string             `json:"date"`
	Window   Window             `json:"window"`
	Slots    []Slot             `json:"slots"`
	Occupied []OccupiedInterval `json:"occupied"`
}

// OccupiedFromAppointments dérive les intervalles occupés des rendez-vous
// confirmés. La durée vient du service tel qu'il est aujourd'hui, pas d'un
// instantané pris à la réservation.
func OccupiedFromAppointments(appointments []models.Appointment) []OccupiedInterval {
	out := make([]OccupiedInterval, 0, len(appointments))
	for _, ap := range appointments {
		duration := time.Duration(ap.Service.DurationMin) * time.Minute
		out = append(out, OccupiedInterval{
			Start:       ap.StartTime,
			End:         ap.StartTime.Add(duration),
			ServiceName: ap.Service.Name,
			DurationMin: ap.Service.DurationMin,
		})
	}
	return out
}

// BuildDayGrid génère la grille du jour : créneaux de 30 minutes depuis
// l'ouverture, le dernier démarrant strictement avant la fermeture.
// Lecture pure, aucune mutation d'état.
func BuildDayGrid(date time.Time, window Window, occupied []OccupiedInterval) SlotGrid {
	grid := SlotGrid{
		Date:     date.Format("2006-01-02"),
		Window:   window,
		Slots:    []Slot{},
		Occupied: occupied,
	}
	if grid.Occupied == nil {
		grid.Occupied = []OccupiedInterval{}
	}

	if !window.Open {
		return grid
	}

	for cur := window.Start; cur.Before(window.End); cur = cur.Add(SlotInterval) {
		available := true
		for _, iv := range occupied {
			if iv.Contains(cur) {
				available = false
				break
			}
		}

		grid.Slots = append(grid.Slots, Slot{
			Time:      cur,
			Display:   cur.Format("15:04"),
			Available: available,
		})
	}

	return grid
}
