package notification

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TurnosCloud/turnos-api/internal/models"
	"github.com/TurnosCloud/turnos-api/internal/timeutil"
)

// ReminderScheduler sends a reminder for every pending turno of the next
// local day. Best effort, same delivery path as confirmations.
type ReminderScheduler struct {
	db         *gorm.DB
	dispatcher *Dispatcher
	clock      *timeutil.Clock
	log        *zap.Logger
}

func NewReminderScheduler(
	db *gorm.DB,
	dispatcher *Dispatcher,
	clock *timeutil.Clock,
	log *zap.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		db:         db,
		dispatcher: dispatcher,
		clock:      clock,
		log:        log,
	}
}

// Start runs the job daily at 08:00 server time.
func (s *ReminderScheduler) Start() {
	c := cron.New()

	c.AddFunc("0 8 * * *", s.Run)

	c.Start()
	s.log.Info("reminder scheduler started")
}

func (s *ReminderScheduler) Run() {
	start, end := s.clock.DayBounds(time.Now().Add(24 * time.Hour))

	var turnos []models.Appointment
	if err := s.db.
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where(
			"status = ? AND start_time >= ? AND start_time <= ?",
			"pending", start, end,
		).
		Find(&turnos).Error; err != nil {
		s.log.Warn("reminder query failed", zap.Error(err))
		return
	}

	for _, ap := range turnos {
		s.dispatcher.DispatchReminder(Message{
			ClientName:  ap.Client.Name,
			ClientEmail: ap.Client.Email,
			ClientPhone: ap.Client.Phone,
			StaffName:   ap.Barber.Name,
			ServiceName: ap.Service.Name,
			Start:       ap.StartTime,
		})
	}

	s.log.Info("reminders dispatched", zap.Int("count", len(turnos)))
}
