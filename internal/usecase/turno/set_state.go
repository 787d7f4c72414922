package turno

import (
	"context"
	"time"

	"github.com/TurnosCloud/turnos-api/internal/audit"
	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/httperr"
	"github.com/TurnosCloud/turnos-api/internal/models"
	"github.com/TurnosCloud/turnos-api/internal/pos"
)

// ======================================================
// INPUT
// ======================================================

type SetTurnoStateInput struct {
	AppointmentID uint
	BarbershopID  uint
	State         string

	RequestedBy uint
}

// ======================================================
// USE CASE
// ======================================================

// SetTurnoState moves a turno between states. Terminal states are
// immutable; transitions among the non-terminal states are otherwise
// free-form (the dashboard drives them). Completing a turno records the
// matching cash transaction in the same unit of work.
type SetTurnoState struct {
	uow   domain.UnitOfWork
	audit AuditTrail
	pos   *pos.Recorder

	now func() time.Time
}

func NewSetTurnoState(
	uow domain.UnitOfWork,
	audit AuditTrail,
	recorder *pos.Recorder,
) *SetTurnoState {
	return &SetTurnoState{
		uow:   uow,
		audit: audit,
		pos:   recorder,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SetTurnoState) Execute(
	ctx context.Context,
	in SetTurnoStateInput,
) (*models.Appointment, error) {

	next, ok := domain.ParseStatus(in.State)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_state")
	}

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

		now := uc.now().UTC()
		ap.Status = string(next)

		switch next {
		case domain.StatusCancelled:
			ap.CancelledAt = &now
		case domain.StatusCompleted:
			ap.CompletedAt = &now
		}

		if err := r.Appointments.Update(ctx, ap); err != nil {
			return err
		}

		if next == domain.StatusCompleted {
			if err := uc.pos.RecordCompletion(ctx, r, ap); err != nil {
				return err
			}
		}

		updated = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.RequestedBy,
		Action:       "turno_" + string(next),
		Entity:       "appointment",
		EntityID:     &updated.ID,
	})

	return updated, nil
}
