package booking

import (
	"context"
	"time"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
)

type GetDaySlots struct {
	repo  schedule.Repository
	cache SlotCache
}

func NewGetDaySlots(repo schedule.Repository, cache SlotCache) *GetDaySlots {
	return &GetDaySlots{repo: repo, cache: cache}
}

// Execute calcule la grille du jour pour un barbier : fenêtre d'ouverture,
// créneaux de 30 minutes marqués disponibles/indisponibles, intervalles
// occupés annotés. Lecture pure.
func (uc *GetDaySlots) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) (*schedule.SlotGrid, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	dateKey := date.Format("2006-01-02")

	if uc.cache != nil {
		if grid, ok := uc.cache.GetGrid(ctx, barberID, dateKey); ok {
			return grid, nil
		}
	}

	wh, err := uc.repo.GetBusinessHours(ctx, int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	window := schedule.ResolveWindow(date, wh)

	var occupied []schedule.OccupiedInterval
	if window.Open {
		dayStart := time.Date(
			date.Year(), date.Month(), date.Day(),
			0, 0, 0, 0,
			date.Location(),
		)
		dayEnd := dayStart.Add(24 * time.Hour)

		appointments, err := uc.repo.ListConfirmedForDay(ctx, barberID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		occupied = schedule.OccupiedFromAppointments(appointments)
	}

	grid := schedule.BuildDayGrid(date, window, occupied)

	if uc.cache != nil {
		uc.cache.SetGrid(ctx, barberID, dateKey, &grid)
	}

	return &grid, nil
}
