package schedule

import (
	"time"

	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// CanDelete : suppression physique réservée aux rendez-vous confirmés et
// encore à venir. Le passé est immuable.
func CanDelete(ap *models.Appointment, now time.Time) error {
	if !ap.StartTime.After(now) {
		return httperr.ErrBusiness("past_appointment")
	}
	if Status(ap.Status) != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
