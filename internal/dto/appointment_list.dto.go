package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	DurationMin int       `json:"duration_min"`
	Status      string    `json:"status"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
	ClientName  string    `json:"client_name"`
}
