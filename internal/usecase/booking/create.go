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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID  uint
	ServiceID uint
	UserID    uint

	Date  string // AAAA-MM-JJ
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	cache SlotCache
	audit *audit.Dispatcher

	now func(tz string) time.Time
}

func NewCreateAppointment(
	repo schedule.Repository,
	cache SlotCache,
	auditDisp *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		audit: auditDisp,
		now:   timezone.NowIn,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Salon (timezone + antécédence minimale)
	// --------------------------------------------------
	tz := timezone.DefaultTimezone
	minAdvance := 0
	if salon, err := uc.repo.GetSalon(ctx); err == nil {
		if salon.Timezone != "" {
			tz = salon.Timezone
		}
		minAdvance = salon.MinAdvanceMinutes
	}

	// --------------------------------------------------
	// Date / heure en heure locale du salon
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := uc.now(tz)
	if !start.After(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Barbier + service
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Horaires d'ouverture
	// --------------------------------------------------
	wh, err := uc.repo.GetBusinessHours(ctx, int(start.Weekday()))
	if err != nil {
		return nil, err
	}

	window := schedule.ResolveWindow(start, wh)
	if !window.Open || start.Before(window.Start) || end.After(window.End) {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	// --------------------------------------------------
	// Vérification de conflit + insertion (atomique)
	// --------------------------------------------------
	ap := &models.Appointment{
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		UserID:    in.UserID,
		StartTime: start,
		Status:    string(schedule.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.BookAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.BarberID, start.Format("2006-01-02"))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	// Rendez-vous enrichi (barbier / service / client) pour l'affichage
	if full, err := uc.repo.GetAppointment(ctx, ap.ID); err == nil {
		return full, nil
	}

	return ap, nil
}
