package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TurnosCloud/turnos-api/internal/httperr"
	"github.com/TurnosCloud/turnos-api/internal/httpresp"
	"github.com/TurnosCloud/turnos-api/internal/middleware"
	ucTurno "github.com/TurnosCloud/turnos-api/internal/usecase/turno"
)

// ======================================================
// HANDLER
// ======================================================

type TurnoHandler struct {
	createUC     *ucTurno.CreateTurno
	rescheduleUC *ucTurno.RescheduleTurno
	setStateUC   *ucTurno.SetTurnoState
	listUC       *ucTurno.ListTurnos
	blockedUC    *ucTurno.ComputeBlockedSlots
}

func NewTurnoHandler(
	createUC *ucTurno.CreateTurno,
	rescheduleUC *ucTurno.RescheduleTurno,
	setStateUC *ucTurno.SetTurnoState,
	listUC *ucTurno.ListTurnos,
	blockedUC *ucTurno.ComputeBlockedSlots,
) *TurnoHandler {
	return &TurnoHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		setStateUC:   setStateUC,
		listUC:       listUC,
		blockedUC:    blockedUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTurnoRequest struct {
	BarberID  uint      `json:"barber_id" binding:"required"`
	ClientID  uint      `json:"client_id" binding:"required"`
	ServiceID uint      `json:"service_id" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
	Notes     string    `json:"notes"`
}

type RescheduleTurnoRequest struct {
	BarberID  *uint      `json:"barber_id"`
	ServiceID *uint      `json:"service_id"`
	Start     *time.Time `json:"start"`
}

type SetTurnoStateRequest struct {
	State string `json:"state" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *TurnoHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucTurno.CreateTurnoInput{
		BarbershopID: barbershopID,
		BarberID:     req.BarberID,
		ClientID:     req.ClientID,
		ServiceID:    req.ServiceID,
		Start:        req.Start,
		Notes:        req.Notes,
		RequestedBy:  userID,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_turno", "Error al crear el turno.")
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *TurnoHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updated, err := h.rescheduleUC.Execute(c.Request.Context(), ucTurno.RescheduleTurnoInput{
		AppointmentID: uint(id),
		BarbershopID:  barbershopID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Start:         req.Start,
		RequestedBy:   userID,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule_turno", "Error al reprogramar el turno.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// STATE
// ======================================================

func (h *TurnoHandler) SetState(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SetTurnoStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updated, err := h.setStateUC.Execute(c.Request.Context(), ucTurno.SetTurnoStateInput{
		AppointmentID: uint(id),
		BarbershopID:  barbershopID,
		State:         req.State,
		RequestedBy:   userID,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_turno", "Error al actualizar el turno.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// LIST
// ======================================================

func (h *TurnoHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	in := ucTurno.ListTurnosInput{BarbershopID: barbershopID}

	if v := c.Query("barber_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			barberID := uint(id)
			in.BarberID = &barberID
		}
	}
	if from, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		in.From = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		in.To = &to
	}

	turnos, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "failed_to_list_turnos", "Error al listar los turnos.")
		return
	}

	httpresp.List(c, turnos)
}

// ======================================================
// BLOCKED SLOTS
// ======================================================

func (h *TurnoHandler) BlockedSlots(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "Fecha inicial inválida.")
		return
	}

	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "Fecha final inválida.")
		return
	}

	if to.Before(from) {
		httperr.BadRequest(c, "invalid_range", "Rango de fechas inválido.")
		return
	}

	slots, err := h.blockedUC.Execute(c.Request.Context(), barbershopID, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_blocked_slots", "Error al calcular los bloqueos.")
		return
	}

	httpresp.List(c, slots)
}
