package schedule

import (
	"context"
	"time"

	"github.com/lebarbier/salon-api/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalon(ctx context.Context) (*models.Salon, error)

	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Business hours --------
	// (nil, nil) quand aucun horaire n'est configuré pour ce jour.
	GetBusinessHours(
		ctx context.Context,
		weekday int,
	) (*models.BusinessHours, error)

	// -------- Availability --------
	// Rendez-vous confirmés du barbier dont le début tombe dans
	// [start, end), service préchargé, triés par heure de début.
	ListConfirmedForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Booking --------
	// Vérification de conflit + insertion en une unité atomique.
	// Retourne ErrBusiness("slot_conflict") en cas de chevauchement.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- State changes --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing --------
	ListForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
