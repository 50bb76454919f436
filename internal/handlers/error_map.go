package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lebarbier/salon-api/internal/httperr"
)

// mapBookingError traduit les erreurs métier du moteur de réservation en
// réponses HTTP distinctes. Tout le reste devient un 500 générique, sans
// détail interne.
func mapBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Une erreur interne est survenue.")
		return
	}

	switch code {
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbier introuvable.")
	case "service_not_found":
		httperr.NotFound(c, code, "Prestation introuvable.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Rendez-vous introuvable.")

	case "forbidden":
		httperr.Forbidden(c, code, "Ce rendez-vous ne vous appartient pas.")

	case "slot_conflict":
		httperr.Conflict(c, code, "Ce créneau est déjà réservé.")

	case "missing_barber_id":
		httperr.BadRequest(c, code, "Le champ barber_id est obligatoire.")
	case "missing_service_id":
		httperr.BadRequest(c, code, "Le champ service_id est obligatoire.")
	case "missing_date":
		httperr.BadRequest(c, code, "Le champ date est obligatoire.")
	case "missing_time":
		httperr.BadRequest(c, code, "Le champ time est obligatoire.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Date ou heure invalide.")
	case "too_soon":
		httperr.BadRequest(c, code, "Ce créneau est déjà passé ou trop proche.")
	case "outside_business_hours":
		httperr.BadRequest(c, code, "En dehors des horaires d'ouverture.")

	case "invalid_state":
		httperr.BadRequest(c, code, "Transition d'état impossible pour ce rendez-vous.")
	case "past_appointment":
		httperr.BadRequest(c, code, "Un rendez-vous passé ne peut pas être supprimé.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Statut cible invalide.")

	default:
		httperr.BadRequest(c, code, "Requête invalide.")
	}
}
