package turno

import (
	"context"
	"time"

	"github.com/TurnosCloud/turnos-api/internal/audit"
	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/models"
	"github.com/TurnosCloud/turnos-api/internal/notification"
)

// ======================================================
// REPOSITORY FAKES
// ======================================================

type fakeStaffRepo struct {
	GetStaffFn        func(ctx context.Context, id uint) (*models.User, error)
	ListActiveStaffFn func(ctx context.Context, barbershopID uint) ([]models.User, error)
}

func (f *fakeStaffRepo) GetStaff(ctx context.Context, id uint) (*models.User, error) {
	return f.GetStaffFn(ctx, id)
}

func (f *fakeStaffRepo) ListActiveStaff(ctx context.Context, barbershopID uint) ([]models.User, error) {
	return f.ListActiveStaffFn(ctx, barbershopID)
}

type fakeServiceRepo struct {
	GetServiceFn func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error)
}

func (f *fakeServiceRepo) GetService(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	return f.GetServiceFn(ctx, barbershopID, serviceID)
}

type fakeClientRepo struct {
	GetClientFn func(ctx context.Context, barbershopID, clientID uint) (*models.Client, error)
}

func (f *fakeClientRepo) GetClient(ctx context.Context, barbershopID, clientID uint) (*models.Client, error) {
	return f.GetClientFn(ctx, barbershopID, clientID)
}

type fakeScheduleRepo struct {
	GetDayFn   func(ctx context.Context, barberID uint, weekday int) (*models.ScheduleDay, error)
	ListDaysFn func(ctx context.Context, barberID uint) ([]models.ScheduleDay, error)
}

func (f *fakeScheduleRepo) GetDay(ctx context.Context, barberID uint, weekday int) (*models.ScheduleDay, error) {
	return f.GetDayFn(ctx, barberID, weekday)
}

func (f *fakeScheduleRepo) ListDays(ctx context.Context, barberID uint) ([]models.ScheduleDay, error) {
	return f.ListDaysFn(ctx, barberID)
}

type fakeAbsenceRepo struct {
	ListOverlappingFn          func(ctx context.Context, barberID uint, start, end time.Time) ([]models.Absence, error)
	ListForTenantOverlappingFn func(ctx context.Context, barbershopID uint, start, end time.Time) ([]models.Absence, error)
}

func (f *fakeAbsenceRepo) ListOverlapping(ctx context.Context, barberID uint, start, end time.Time) ([]models.Absence, error) {
	if f.ListOverlappingFn == nil {
		return nil, nil
	}
	return f.ListOverlappingFn(ctx, barberID, start, end)
}

func (f *fakeAbsenceRepo) ListForTenantOverlapping(ctx context.Context, barbershopID uint, start, end time.Time) ([]models.Absence, error) {
	if f.ListForTenantOverlappingFn == nil {
		return nil, nil
	}
	return f.ListForTenantOverlappingFn(ctx, barbershopID, start, end)
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, ab *models.Absence) error {
	return nil
}

type fakeAppointmentRepo struct {
	CreateFn          func(ctx context.Context, ap *models.Appointment) error
	UpdateFn          func(ctx context.Context, ap *models.Appointment) error
	GetForTenantFn    func(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error)
	ListOverlappingFn func(ctx context.Context, barberID uint, start, end time.Time, excludeID uint) ([]models.Appointment, error)
	ListFn            func(ctx context.Context, barbershopID uint, f domain.AppointmentFilter) ([]models.Appointment, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	if f.CreateFn == nil {
		ap.ID = 1
		return nil
	}
	return f.CreateFn(ctx, ap)
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, ap *models.Appointment) error {
	if f.UpdateFn == nil {
		return nil
	}
	return f.UpdateFn(ctx, ap)
}

func (f *fakeAppointmentRepo) GetForTenant(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
	return f.GetForTenantFn(ctx, appointmentID, barbershopID)
}

func (f *fakeAppointmentRepo) ListOverlapping(ctx context.Context, barberID uint, start, end time.Time, excludeID uint) ([]models.Appointment, error) {
	if f.ListOverlappingFn == nil {
		return nil, nil
	}
	return f.ListOverlappingFn(ctx, barberID, start, end, excludeID)
}

func (f *fakeAppointmentRepo) List(ctx context.Context, barbershopID uint, fl domain.AppointmentFilter) ([]models.Appointment, error) {
	return f.ListFn(ctx, barbershopID, fl)
}

type fakeCashRepo struct {
	Created []models.CashTransaction
}

func (f *fakeCashRepo) Create(ctx context.Context, tx *models.CashTransaction) error {
	f.Created = append(f.Created, *tx)
	return nil
}

// ======================================================
// UNIT OF WORK + SIDE-EFFECT FAKES
// ======================================================

// fakeUoW hands fn the prepared bundle; there is no real transaction.
type fakeUoW struct {
	repos domain.Repositories
	calls int
}

func (f *fakeUoW) Do(ctx context.Context, fn func(ctx context.Context, r domain.Repositories) error) error {
	f.calls++
	return fn(ctx, f.repos)
}

type fakeAudit struct {
	Events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.Events = append(f.Events, ev)
}

type fakeConfirm struct {
	Sent []notification.Message
}

func (f *fakeConfirm) DispatchConfirmation(m notification.Message) {
	f.Sent = append(f.Sent, m)
}

// ======================================================
// FIXTURE
// ======================================================

// Monday 09:00-18:00 with a 13:00-14:00 break, one active barber, one
// 30-minute service. Offset -3, so local Monday March 2 2026 HH:MM is
// HH+3:MM UTC.
func bookingFixture() domain.Repositories {
	return domain.Repositories{
		Staff: &fakeStaffRepo{
			GetStaffFn: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id, Name: "Lucas", Active: true}, nil
			},
		},
		Services: &fakeServiceRepo{
			GetServiceFn: func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
				return &models.Service{ID: serviceID, Name: "Corte clásico", DurationMin: 30, Price: 4500}, nil
			},
		},
		Clients: &fakeClientRepo{
			GetClientFn: func(ctx context.Context, barbershopID, clientID uint) (*models.Client, error) {
				return &models.Client{ID: clientID, Name: "Martín", Phone: "+5491155550000"}, nil
			},
		},
		Schedules: &fakeScheduleRepo{
			GetDayFn: func(ctx context.Context, barberID uint, weekday int) (*models.ScheduleDay, error) {
				if weekday != 1 {
					return nil, nil
				}
				return &models.ScheduleDay{
					BarberID:  barberID,
					Weekday:   1,
					StartTime: "09:00",
					EndTime:   "18:00",
					Breaks: []models.ScheduleBreak{
						{StartTime: "13:00", EndTime: "14:00"},
					},
				}, nil
			},
		},
		Absences:     &fakeAbsenceRepo{},
		Appointments: &fakeAppointmentRepo{},
		Cash:         &fakeCashRepo{},
	}
}

func localMonday(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour+3, min, 0, 0, time.UTC)
}

func fixedNow() time.Time {
	// Well before the fixture Monday.
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}
