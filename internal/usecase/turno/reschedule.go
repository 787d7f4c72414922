package turno

import (
	"context"
	"time"

	"github.com/TurnosCloud/turnos-api/internal/audit"
	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/httperr"
	"github.com/TurnosCloud/turnos-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Nil fields keep the current value. A service change recomputes the
// duration; otherwise the existing duration is preserved.
type RescheduleTurnoInput struct {
	AppointmentID uint
	BarbershopID  uint

	BarberID  *uint
	ServiceID *uint
	Start     *time.Time

	RequestedBy uint
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleTurno struct {
	uow       domain.UnitOfWork
	validator *domain.Validator
	audit     AuditTrail
}

func NewRescheduleTurno(
	uow domain.UnitOfWork,
	validator *domain.Validator,
	audit AuditTrail,
) *RescheduleTurno {
	return &RescheduleTurno{
		uow:       uow,
		validator: validator,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleTurno) Execute(
	ctx context.Context,
	in RescheduleTurnoInput,
) (*models.Appointment, error) {

	var updated *models.Appointment

	err := uc.uow.Do(ctx, func(ctx context.Context, r domain.Repositories) error {

		ap, err := r.Appointments.GetForTenant(ctx, in.AppointmentID, in.BarbershopID)
		if err != nil {
			return err
		}
		if ap == nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if domain.Status(ap.Status).Terminal() {
			return httperr.ErrBusiness("immutable_terminal_state")
		}

		barberID := ap.BarberID
		if in.BarberID != nil {
			barberID = *in.BarberID
		}

		start := ap.StartTime
		if in.Start != nil {
			start = in.Start.UTC()
		}

		duration := ap.EndTime.Sub(ap.StartTime)
		serviceID := ap.ServiceID
		if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
			svc, err := r.Services.GetService(ctx, in.BarbershopID, *in.ServiceID)
			if err != nil {
				return err
			}
			if svc == nil {
				return httperr.ErrBusiness("service_not_found")
			}
			serviceID = svc.ID
			duration = time.Duration(svc.DurationMin) * time.Minute
		}

		end := start.Add(duration)

		// The turno being moved must not conflict with itself.
		if err := uc.validator.Validate(ctx, r, barberID, start, end, ap.ID); err != nil {
			return err
		}

		ap.BarberID = barberID
		ap.ServiceID = serviceID
		ap.StartTime = start
		ap.EndTime = end

		if err := r.Appointments.Update(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.RequestedBy,
		Action:       "turno_rescheduled",
		Entity:       "appointment",
		EntityID:     &updated.ID,
	})

	return updated, nil
}
