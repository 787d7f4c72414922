package models

import "time"

// ScheduleDay is one weekly recurring working-hours entry for a barber.
// Times are stored as "HH:MM" wall-clock strings in the configured local
// offset. A barber has at most one entry per weekday; saving a schedule
// replaces all of the barber's rows wholesale.
type ScheduleDay struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_schedule_barber_weekday,unique" json:"barber_id"`

	Weekday int `gorm:"index:idx_schedule_barber_weekday,unique" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Breaks []ScheduleBreak `gorm:"foreignKey:ScheduleDayID;constraint:OnDelete:CASCADE" json:"breaks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleBreak lies within [StartTime, EndTime) of its parent day.
type ScheduleBreak struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ScheduleDayID uint `json:"schedule_day_id"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
}
