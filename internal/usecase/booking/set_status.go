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

// SetAppointmentStatus est la surface admin : confirmed → completed ou
// confirmed → cancelled, rien d'autre.
type SetAppointmentStatus struct {
	repo  schedule.Repository
	cache SlotCache
	audit *audit.Dispatcher

	now func(tz string) time.Time
}

func NewSetAppointmentStatus(
	repo schedule.Repository,
	cache SlotCache,
	auditDisp *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		cache: cache,
		audit: auditDisp,
		now:   timezone.NowIn,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	target schedule.Status,
	adminID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	tz := timezone.DefaultTimezone
	if salon, err := uc.repo.GetSalon(ctx); err == nil && salon.Timezone != "" {
		tz = salon.Timezone
	}
	now := uc.now(tz)

	var action string
	switch target {
	case schedule.StatusCompleted:
		if err := schedule.Complete(ap, now); err != nil {
			return nil, err
		}
		action = "appointment_completed"
	case schedule.StatusCancelled:
		if err := schedule.Cancel(ap, now); err != nil {
			return nil, err
		}
		action = "appointment_cancelled"
	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.BarberID, ap.StartTime.Format("2006-01-02"))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   action,
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
