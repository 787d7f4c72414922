package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/models"
)

// --------------------------------------------------
// Staff
// --------------------------------------------------

type StaffGormRepository struct {
	db *gorm.DB
}

func (r *StaffGormRepository) GetStaff(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var staff models.User
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *StaffGormRepository) ListActiveStaff(
	ctx context.Context,
	barbershopID uint,
) ([]models.User, error) {

	var staff []models.User
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = ?", barbershopID, true).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

type ServiceGormRepository struct {
	db *gorm.DB
}

func (r *ServiceGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

type ClientGormRepository struct {
	db *gorm.DB
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", clientID, barbershopID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

type ScheduleGormRepository struct {
	db *gorm.DB
}

func (r *ScheduleGormRepository) GetDay(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.ScheduleDay, error) {

	var day models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func (r *ScheduleGormRepository) ListDays(
	ctx context.Context,
	barberID uint,
) ([]models.ScheduleDay, error) {

	var days []models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// --------------------------------------------------
// Absence
// --------------------------------------------------

type AbsenceGormRepository struct {
	db *gorm.DB
}

func (r *AbsenceGormRepository) ListOverlapping(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Absence, error) {

	var absences []models.Absence
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_at <= ? AND end_at >= ?",
			barberID, end, start,
		).
		Find(&absences).Error; err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *AbsenceGormRepository) ListForTenantOverlapping(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Absence, error) {

	var absences []models.Absence
	if err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = absences.barber_id").
		Where(
			"users.barbershop_id = ? AND absences.start_at <= ? AND absences.end_at >= ?",
			barbershopID, end, start,
		).
		Find(&absences).Error; err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *AbsenceGormRepository) Create(
	ctx context.Context,
	ab *models.Absence,
) error {
	return r.db.WithContext(ctx).Create(ab).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

type AppointmentGormRepository struct {
	db *gorm.DB
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) GetForTenant(
	ctx context.Context,
	appointmentID uint,
	barbershopID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", appointmentID, barbershopID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListOverlapping(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			barberID, domain.LiveStatuses(), end, start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflicts []models.Appointment
	if err := q.Find(&conflicts).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	barbershopID uint,
	f domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barbershop_id = ?", barbershopID)

	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.From != nil {
		q = q.Where("start_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_time < ?", *f.To)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Cash
// --------------------------------------------------

type CashGormRepository struct {
	db *gorm.DB
}

func (r *CashGormRepository) Create(
	ctx context.Context,
	tx *models.CashTransaction,
) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// Compile-time checks
var (
	_ domain.StaffRepository       = (*StaffGormRepository)(nil)
	_ domain.ServiceRepository     = (*ServiceGormRepository)(nil)
	_ domain.ClientRepository      = (*ClientGormRepository)(nil)
	_ domain.ScheduleRepository    = (*ScheduleGormRepository)(nil)
	_ domain.AbsenceRepository     = (*AbsenceGormRepository)(nil)
	_ domain.AppointmentRepository = (*AppointmentGormRepository)(nil)
	_ domain.CashRepository        = (*CashGormRepository)(nil)
)
