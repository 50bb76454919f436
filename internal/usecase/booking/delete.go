package booking

import (
	"context"
	"time"

	"github.com/lebarbier/salon-api/internal/audit"
	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/timezone"
)

type DeleteAppointment struct {
	repo  schedule.Repository
	cache SlotCache
	audit *audit.Dispatcher

	now func(tz string) time.Time
}

func NewDeleteAppointment(
	repo schedule.Repository,
	cache SlotCache,
	auditDisp *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		cache: cache,
		audit: auditDisp,
		now:   timezone.NowIn,
	}
}

// Execute supprime physiquement un rendez-vous confirmé et futur.
// Les rendez-vous passés ou déjà clos sont refusés.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	adminID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	tz := timezone.DefaultTimezone
	if salon, err := uc.repo.GetSalon(ctx); err == nil && salon.Timezone != "" {
		tz = salon.Timezone
	}

	if err := schedule.CanDelete(ap, uc.now(tz)); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.BarberID, ap.StartTime.Format("2006-01-02"))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "appointment_deleted",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return nil
}
