package turno

import (
	"context"
	"testing"
	"time"

	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/httperr"
	"github.com/TurnosCloud/turnos-api/internal/models"
	"github.com/TurnosCloud/turnos-api/internal/timeutil"
)

func newCreateTurno(repos domain.Repositories) (*CreateTurno, *fakeAudit, *fakeConfirm) {
	auditFake := &fakeAudit{}
	confirmFake := &fakeConfirm{}

	uc := NewCreateTurno(
		&fakeUoW{repos: repos},
		domain.NewValidator(timeutil.NewClock(-3)),
		auditFake,
		confirmFake,
	)
	uc.now = fixedNow

	return uc, auditFake, confirmFake
}

func TestCreateTurnoOK(t *testing.T) {
	repos := bookingFixture()
	uc, auditFake, confirmFake := newCreateTurno(repos)

	ap, err := uc.Execute(context.Background(), CreateTurnoInput{
		BarbershopID: 10,
		BarberID:     1,
		ClientID:     5,
		ServiceID:    3,
		Start:        localMonday(10, 0),
		Notes:        "primera visita",
		RequestedBy:  99,
	})
	if err != nil {
		t.Fatalf("Execute returned %v", err)
	}

	if ap.Status != "pending" {
		t.Errorf("Status = %q, want pending", ap.Status)
	}
	wantEnd := localMonday(10, 30)
	if !ap.EndTime.Equal(wantEnd) {
		t.Errorf("EndTime = %v, want %v", ap.EndTime, wantEnd)
	}
	if ap.BarbershopID != 10 || ap.BarberID != 1 || ap.ClientID != 5 || ap.ServiceID != 3 {
		t.Errorf("unexpected ids on created turno: %+v", ap)
	}
	if ap.Notes != "primera visita" {
		t.Errorf("Notes = %q", ap.Notes)
	}

	if len(confirmFake.Sent) != 1 {
		t.Fatalf("dispatched %d confirmations, want 1", len(confirmFake.Sent))
	}
	msg := confirmFake.Sent[0]
	if msg.ClientName != "Martín" || msg.StaffName != "Lucas" || msg.ServiceName != "Corte clásico" {
		t.Errorf("confirmation message = %+v", msg)
	}
	if !msg.Start.Equal(localMonday(10, 0)) {
		t.Errorf("confirmation start = %v", msg.Start)
	}

	if len(auditFake.Events) != 1 {
		t.Fatalf("dispatched %d audit events, want 1", len(auditFake.Events))
	}
	ev := auditFake.Events[0]
	if ev.Action != "turno_created" || ev.BarbershopID != 10 {
		t.Errorf("audit event = %+v", ev)
	}
	if ev.UserID == nil || *ev.UserID != 99 {
		t.Errorf("audit user = %v, want 99", ev.UserID)
	}
}

func TestCreateTurnoServiceNotFound(t *testing.T) {
	repos := bookingFixture()
	repos.Services = &fakeServiceRepo{
		GetServiceFn: func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
			return nil, nil
		},
	}
	uc, _, _ := newCreateTurno(repos)

	_, err := uc.Execute(context.Background(), CreateTurnoInput{
		BarbershopID: 10, BarberID: 1, ClientID: 5, ServiceID: 3,
		Start: localMonday(10, 0),
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("Execute returned %v, want service_not_found", err)
	}
}

func TestCreateTurnoClientNotFound(t *testing.T) {
	repos := bookingFixture()
	repos.Clients = &fakeClientRepo{
		GetClientFn: func(ctx context.Context, barbershopID, clientID uint) (*models.Client, error) {
			return nil, nil
		},
	}
	uc, _, _ := newCreateTurno(repos)

	_, err := uc.Execute(context.Background(), CreateTurnoInput{
		BarbershopID: 10, BarberID: 1, ClientID: 5, ServiceID: 3,
		Start: localMonday(10, 0),
	})
	if !httperr.IsBusiness(err, "client_not_found") {
		t.Fatalf("Execute returned %v, want client_not_found", err)
	}
}

func TestCreateTurnoInThePast(t *testing.T) {
	repos := bookingFixture()
	uc, _, _ := newCreateTurno(repos)
	uc.now = func() time.Time { return localMonday(11, 0) }

	_, err := uc.Execute(context.Background(), CreateTurnoInput{
		BarbershopID: 10, BarberID: 1, ClientID: 5, ServiceID: 3,
		Start: localMonday(10, 0),
	})
	if !httperr.IsBusiness(err, "past_appointment") {
		t.Fatalf("Execute returned %v, want past_appointment", err)
	}
}

func TestCreateTurnoConflictSkipsSideEffects(t *testing.T) {
	repos := bookingFixture()
	created := false
	repos.Appointments = &fakeAppointmentRepo{
		ListOverlappingFn: func(ctx context.Context, barberID uint, start, end time.Time, excludeID uint) ([]models.Appointment, error) {
			return []models.Appointment{{ID: 7}}, nil
		},
		CreateFn: func(ctx context.Context, ap *models.Appointment) error {
			created = true
			return nil
		},
	}
	uc, auditFake, confirmFake := newCreateTurno(repos)

	_, err := uc.Execute(context.Background(), CreateTurnoInput{
		BarbershopID: 10, BarberID: 1, ClientID: 5, ServiceID: 3,
		Start: localMonday(10, 0),
	})
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("Execute returned %v, want slot_already_booked", err)
	}
	if created {
		t.Error("appointment created despite validation failure")
	}
	if len(auditFake.Events) != 0 || len(confirmFake.Sent) != 0 {
		t.Error("side effects dispatched on a rolled-back booking")
	}
}

func TestCreateTurnoOutsideWorkingHours(t *testing.T) {
	repos := bookingFixture()
	uc, _, _ := newCreateTurno(repos)

	// 17:45 + 30min ends past 18:00 closing.
	_, err := uc.Execute(context.Background(), CreateTurnoInput{
		BarbershopID: 10, BarberID: 1, ClientID: 5, ServiceID: 3,
		Start: localMonday(17, 45),
	})
	if !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("Execute returned %v, want outside_working_hours", err)
	}
}
