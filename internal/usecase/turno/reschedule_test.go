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

func existingTurno() *models.Appointment {
	// 10:00-10:45 local Monday, still pending.
	return &models.Appointment{
		ID:           12,
		BarbershopID: 10,
		BarberID:     1,
		ClientID:     5,
		ServiceID:    3,
		StartTime:    localMonday(10, 0),
		EndTime:      localMonday(10, 45),
		Status:       "pending",
	}
}

func newRescheduleTurno(repos domain.Repositories) (*RescheduleTurno, *fakeAudit) {
	auditFake := &fakeAudit{}
	uc := NewRescheduleTurno(
		&fakeUoW{repos: repos},
		domain.NewValidator(timeutil.NewClock(-3)),
		auditFake,
	)
	return uc, auditFake
}

func TestRescheduleTurnoMoveKeepsDuration(t *testing.T) {
	repos := bookingFixture()

	var gotExclude uint
	repos.Appointments = &fakeAppointmentRepo{
		GetForTenantFn: func(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
			return existingTurno(), nil
		},
		ListOverlappingFn: func(ctx context.Context, barberID uint, start, end time.Time, excludeID uint) ([]models.Appointment, error) {
			gotExclude = excludeID
			return nil, nil
		},
	}
	uc, auditFake := newRescheduleTurno(repos)

	newStart := localMonday(15, 0)
	ap, err := uc.Execute(context.Background(), RescheduleTurnoInput{
		AppointmentID: 12,
		BarbershopID:  10,
		Start:         &newStart,
		RequestedBy:   99,
	})
	if err != nil {
		t.Fatalf("Execute returned %v", err)
	}

	if !ap.StartTime.Equal(newStart) {
		t.Errorf("StartTime = %v, want %v", ap.StartTime, newStart)
	}
	// Original 45-minute span survives the move untouched.
	if !ap.EndTime.Equal(localMonday(15, 45)) {
		t.Errorf("EndTime = %v, want %v", ap.EndTime, localMonday(15, 45))
	}
	if ap.ServiceID != 3 || ap.BarberID != 1 {
		t.Errorf("unchanged fields mutated: %+v", ap)
	}

	if gotExclude != 12 {
		t.Errorf("overlap check excluded id %d, want 12", gotExclude)
	}

	if len(auditFake.Events) != 1 || auditFake.Events[0].Action != "turno_rescheduled" {
		t.Errorf("audit events = %+v", auditFake.Events)
	}
}

func TestRescheduleTurnoServiceChangeRecomputesDuration(t *testing.T) {
	repos := bookingFixture()
	repos.Appointments = &fakeAppointmentRepo{
		GetForTenantFn: func(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
			return existingTurno(), nil
		},
	}
	repos.Services = &fakeServiceRepo{
		GetServiceFn: func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
			return &models.Service{ID: serviceID, Name: "Corte y barba", DurationMin: 60, Price: 7000}, nil
		},
	}
	uc, _ := newRescheduleTurno(repos)

	newService := uint(8)
	ap, err := uc.Execute(context.Background(), RescheduleTurnoInput{
		AppointmentID: 12,
		BarbershopID:  10,
		ServiceID:     &newService,
	})
	if err != nil {
		t.Fatalf("Execute returned %v", err)
	}

	if ap.ServiceID != 8 {
		t.Errorf("ServiceID = %d, want 8", ap.ServiceID)
	}
	if !ap.EndTime.Equal(localMonday(11, 0)) {
		t.Errorf("EndTime = %v, want %v", ap.EndTime, localMonday(11, 0))
	}
}

func TestRescheduleTurnoNotFound(t *testing.T) {
	repos := bookingFixture()
	repos.Appointments = &fakeAppointmentRepo{
		GetForTenantFn: func(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
			return nil, nil
		},
	}
	uc, _ := newRescheduleTurno(repos)

	_, err := uc.Execute(context.Background(), RescheduleTurnoInput{
		AppointmentID: 12,
		BarbershopID:  10,
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("Execute returned %v, want appointment_not_found", err)
	}
}

func TestRescheduleTurnoTerminalImmutable(t *testing.T) {
	for _, status := range []string{"completed", "cancelled", "no_show"} {
		t.Run(status, func(t *testing.T) {
			repos := bookingFixture()
			repos.Appointments = &fakeAppointmentRepo{
				GetForTenantFn: func(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
					ap := existingTurno()
					ap.Status = status
					return ap, nil
				},
			}
			uc, auditFake := newRescheduleTurno(repos)

			newStart := localMonday(15, 0)
			_, err := uc.Execute(context.Background(), RescheduleTurnoInput{
				AppointmentID: 12,
				BarbershopID:  10,
				Start:         &newStart,
			})
			if !httperr.IsBusiness(err, "immutable_terminal_state") {
				t.Fatalf("Execute returned %v, want immutable_terminal_state", err)
			}
			if len(auditFake.Events) != 0 {
				t.Error("audit dispatched for a rejected reschedule")
			}
		})
	}
}

func TestRescheduleTurnoIntoBreakRejected(t *testing.T) {
	repos := bookingFixture()
	repos.Appointments = &fakeAppointmentRepo{
		GetForTenantFn: func(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
			return existingTurno(), nil
		},
	}
	uc, _ := newRescheduleTurno(repos)

	newStart := localMonday(13, 15)
	_, err := uc.Execute(context.Background(), RescheduleTurnoInput{
		AppointmentID: 12,
		BarbershopID:  10,
		Start:         &newStart,
	})
	if !httperr.IsBusiness(err, "conflicts_with_break") {
		t.Fatalf("Execute returned %v, want conflicts_with_break", err)
	}
}
