package turno

import (
	"context"
	"time"

	"github.com/TurnosCloud/turnos-api/internal/models"
)

// One repository per entity. Lookups scoped to a tenant return (nil, nil)
// both when the row does not exist and when it belongs to another tenant,
// so a caller can never learn about another barbershop's data.

type StaffRepository interface {
	// GetStaff returns (nil, nil) when no such barber exists.
	GetStaff(ctx context.Context, id uint) (*models.User, error)

	ListActiveStaff(ctx context.Context, barbershopID uint) ([]models.User, error)
}

type ServiceRepository interface {
	// GetService returns (nil, nil) when absent or owned by another tenant.
	GetService(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error)
}

type ClientRepository interface {
	// GetClient returns (nil, nil) when absent or owned by another tenant.
	GetClient(ctx context.Context, barbershopID, clientID uint) (*models.Client, error)
}

type ScheduleRepository interface {
	// GetDay returns (nil, nil) when the barber does not work that weekday.
	// Breaks come preloaded.
	GetDay(ctx context.Context, barberID uint, weekday int) (*models.ScheduleDay, error)

	ListDays(ctx context.Context, barberID uint) ([]models.ScheduleDay, error)
}

type AbsenceRepository interface {
	// Overlap bounds are inclusive on both ends:
	// absence.start <= end && absence.end >= start.
	ListOverlapping(ctx context.Context, barberID uint, start, end time.Time) ([]models.Absence, error)

	ListForTenantOverlapping(ctx context.Context, barbershopID uint, start, end time.Time) ([]models.Absence, error)

	Create(ctx context.Context, ab *models.Absence) error
}

type AppointmentFilter struct {
	BarberID *uint
	From     *time.Time
	To       *time.Time
}

type AppointmentRepository interface {
	Create(ctx context.Context, ap *models.Appointment) error

	Update(ctx context.Context, ap *models.Appointment) error

	// GetForTenant returns (nil, nil) when absent or owned by another tenant.
	GetForTenant(ctx context.Context, appointmentID, barbershopID uint) (*models.Appointment, error)

	// ListOverlapping returns the barber's live appointments whose
	// [start, end) window overlaps the given one, skipping excludeID when
	// non-zero. Inside a transaction the matched rows are locked FOR UPDATE.
	ListOverlapping(ctx context.Context, barberID uint, start, end time.Time, excludeID uint) ([]models.Appointment, error)

	// List is tenant-scoped, filtered, ordered by start time ascending.
	List(ctx context.Context, barbershopID uint, f AppointmentFilter) ([]models.Appointment, error)
}

type CashRepository interface {
	Create(ctx context.Context, tx *models.CashTransaction) error
}

// Repositories bundles the typed repositories bound to one datastore handle.
// Inside a UnitOfWork all of them see the same transaction.
type Repositories struct {
	Staff        StaffRepository
	Services     ServiceRepository
	Clients      ClientRepository
	Schedules    ScheduleRepository
	Absences     AbsenceRepository
	Appointments AppointmentRepository
	Cash         CashRepository
}

// UnitOfWork runs fn atomically: every read and write through the handed
// Repositories belongs to one transaction, and a returned error rolls the
// whole thing back. The check-then-insert booking sequence relies on this
// plus row locking to stay serializable per barber.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
}
