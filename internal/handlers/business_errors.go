package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TurnosCloud/turnos-api/internal/httperr"
)

var businessMessages = map[string]string{
	"past_appointment":         "El turno no puede empezar en el pasado.",
	"service_not_found":        "Servicio no encontrado.",
	"client_not_found":         "Cliente no encontrado.",
	"staff_unavailable":        "El barbero no está disponible.",
	"no_schedule_for_day":      "El barbero no trabaja ese día.",
	"outside_working_hours":    "Fuera del horario de atención.",
	"conflicts_with_break":     "El horario coincide con un descanso.",
	"staff_on_absence":         "El barbero está ausente en esa fecha.",
	"slot_already_booked":      "El horario ya está reservado.",
	"appointment_not_found":    "Turno no encontrado.",
	"immutable_terminal_state": "El turno ya está finalizado.",
	"invalid_state":            "Estado desconocido.",
}

// writeBusinessError maps a business rejection to its HTTP shape and
// reports whether err was one. Infrastructure errors stay with the caller.
func writeBusinessError(c *gin.Context, err error) bool {
	code := httperr.BusinessCode(err)
	if code == "" {
		return false
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Solicitud inválida."
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, code, msg)
	case "slot_already_booked":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
	return true
}
