package models

import "time"

// CashTransaction is the financial record the POS expects once an
// appointment completes. Amount snapshots the service price at that moment.
type CashTransaction struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	AppointmentID uint        `json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	Amount float64 `json:"amount"`
	Method string  `gorm:"size:20;default:'cash'" json:"method"`

	CreatedAt time.Time `json:"created_at"`
}
