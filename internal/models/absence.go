package models

import "time"

// Absence is a punctual unavailability window (vacation, sick day) that
// overrides the recurring schedule. Bounds are absolute instants; rows are
// never updated, only created and queried by range overlap.
type Absence struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"not null;index" json:"barber_id"`

	StartAt time.Time `gorm:"not null" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
