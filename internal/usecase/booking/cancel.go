package booking

import (
	"context"
	"time"

	"github.com/lebarbier/salon-api/internal/audit"
	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/models"
	"github.com/lebarbier/salon-api/internal/timezone"
)

type CancelAppointment struct {
	repo  schedule.Repository
	cache SlotCache
	audit *audit.Dispatcher

	now func(tz string) time.Time
}

func NewCancelAppointment(
	repo schedule.Repository,
	cache SlotCache,
	auditDisp *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: cache,
		audit: auditDisp,
		now:   timezone.NowIn,
	}
}

// Execute annule un rendez-vous. Seul le propriétaire (ou un admin) peut
// annuler ; annuler un rendez-vous déjà annulé est un no-op.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	requesterID uint,
	isAdmin bool,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !isAdmin && ap.UserID != requesterID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if schedule.Status(ap.Status) == schedule.StatusCancelled {
		return ap, nil
	}

	tz := timezone.DefaultTimezone
	if salon, err := uc.repo.GetSalon(ctx); err == nil && salon.Timezone != "" {
		tz = salon.Timezone
	}

	if err := schedule.Cancel(ap, uc.now(tz)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// le créneau redevient immédiatement réservable
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.BarberID, ap.StartTime.Format("2006-01-02"))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &requesterID,
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
