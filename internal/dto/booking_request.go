package dto

import (
	"encoding/json"

	"github.com/lebarbier/salon-api/internal/httperr"
)

// BookingRequest est le schéma canonique de création de rendez-vous.
// L'ancien client mobile envoie des noms de champs français ; la traduction
// des alias se fait ici, à la frontière, jamais dans le moteur.
type BookingRequest struct {
	BarberID  uint
	ServiceID uint
	Date      string // AAAA-MM-JJ
	Time      string // HH:MM
	Notes     string
}

func (r *BookingRequest) UnmarshalJSON(data []byte) error {
	var aux struct {
		BarberID  *uint `json:"barber_id"`
		BarbierID *uint `json:"barbier_id"`

		ServiceID    *uint `json:"service_id"`
		PrestationID *uint `json:"prestation_id"`

		Date string `json:"date"`

		Time  string `json:"time"`
		Heure string `json:"heure"`

		Notes string `json:"notes"`
		Note  string `json:"note"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch {
	case aux.BarberID != nil:
		r.BarberID = *aux.BarberID
	case aux.BarbierID != nil:
		r.BarberID = *aux.BarbierID
	}

	switch {
	case aux.ServiceID != nil:
		r.ServiceID = *aux.ServiceID
	case aux.PrestationID != nil:
		r.ServiceID = *aux.PrestationID
	}

	r.Date = aux.Date

	r.Time = aux.Time
	if r.Time == "" {
		r.Time = aux.Heure
	}

	r.Notes = aux.Notes
	if r.Notes == "" {
		r.Notes = aux.Note
	}

	return nil
}

// Validate nomme le premier champ manquant, pour des 400 exploitables.
func (r *BookingRequest) Validate() error {
	if r.BarberID == 0 {
		return httperr.ErrBusiness("missing_barber_id")
	}
	if r.ServiceID == 0 {
		return httperr.ErrBusiness("missing_service_id")
	}
	if r.Date == "" {
		return httperr.ErrBusiness("missing_date")
	}
	if r.Time == "" {
		return httperr.ErrBusiness("missing_time")
	}
	return nil
}
