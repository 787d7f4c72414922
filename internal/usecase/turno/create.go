package turno

import (
	"context"
	"time"

	"github.com/TurnosCloud/turnos-api/internal/audit"
	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/httperr"
	"github.com/TurnosCloud/turnos-api/internal/models"
	"github.com/TurnosCloud/turnos-api/internal/notification"
)

// ======================================================
// INPUT
// ======================================================

type CreateTurnoInput struct {
	BarbershopID uint
	BarberID     uint
	ClientID     uint
	ServiceID    uint

	Start time.Time
	Notes string

	// RequestedBy feeds the audit trail only.
	RequestedBy uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateTurno struct {
	uow       domain.UnitOfWork
	validator *domain.Validator
	audit     AuditTrail
	notifier  ConfirmationSender

	now func() time.Time
}

func NewCreateTurno(
	uow domain.UnitOfWork,
	validator *domain.Validator,
	audit AuditTrail,
	notifier ConfirmationSender,
) *CreateTurno {
	return &CreateTurno{
		uow:       uow,
		validator: validator,
		audit:     audit,
		notifier:  notifier,
		now:       time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateTurno) Execute(
	ctx context.Context,
	in CreateTurnoInput,
) (*models.Appointment, error) {

	var (
		created *models.Appointment
		confirm notification.Message
	)

	err := uc.uow.Do(ctx, func(ctx context.Context, r domain.Repositories) error {

		svc, err := r.Services.GetService(ctx, in.BarbershopID, in.ServiceID)
		if err != nil {
			return err
		}
		if svc == nil {
			return httperr.ErrBusiness("service_not_found")
		}

		client, err := r.Clients.GetClient(ctx, in.BarbershopID, in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return httperr.ErrBusiness("client_not_found")
		}

		start := in.Start.UTC()
		end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

		if start.Before(uc.now().UTC()) {
			return httperr.ErrBusiness("past_appointment")
		}

		if err := uc.validator.Validate(ctx, r, in.BarberID, start, end, 0); err != nil {
			return err
		}

		ap := &models.Appointment{
			BarbershopID: in.BarbershopID,
			BarberID:     in.BarberID,
			ClientID:     client.ID,
			ServiceID:    svc.ID,
			StartTime:    start,
			EndTime:      end,
			Status:       string(domain.InitialStatus()),
			Notes:        in.Notes,
		}

		if err := r.Appointments.Create(ctx, ap); err != nil {
			return err
		}

		// Staff row already loaded by the validator; reload here only for
		// the name in the confirmation text.
		staff, err := r.Staff.GetStaff(ctx, in.BarberID)
		if err != nil {
			return err
		}

		created = ap
		confirm = notification.Message{
			ClientName:  client.Name,
			ClientEmail: client.Email,
			ClientPhone: client.Phone,
			StaffName:   staff.Name,
			ServiceName: svc.Name,
			Start:       start,
		}
		return nil
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
		return nil, err
	}

	// Post-commit side effects, both fire-and-forget.
	uc.notifier.DispatchConfirmation(confirm)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.RequestedBy,
		Action:       "turno_created",
		Entity:       "appointment",
		EntityID:     &created.ID,
	})

	return created, nil
}
