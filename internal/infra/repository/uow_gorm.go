package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
)

// NewRepositories binds every typed repository to the given handle, which
// may be the root connection or a transaction.
func NewRepositories(db *gorm.DB) domain.Repositories {
	return domain.Repositories{
		Staff:        &StaffGormRepository{db: db},
		Services:     &ServiceGormRepository{db: db},
		Clients:      &ClientGormRepository{db: db},
		Schedules:    &ScheduleGormRepository{db: db},
		Absences:     &AbsenceGormRepository{db: db},
		Appointments: &AppointmentGormRepository{db: db},
		Cash:         &CashGormRepository{db: db},
	}
}

type GormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Do runs fn inside one database transaction; the repositories fn receives
// all share it. An error from fn rolls everything back.
func (u *GormUnitOfWork) Do(
	ctx context.Context,
	fn func(ctx context.Context, r domain.Repositories) error,
) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})
}

var _ domain.UnitOfWork = (*GormUnitOfWork)(nil)
