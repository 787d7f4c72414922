package turno

import "time"

type BlockKind string

const (
	BlockDayOff  BlockKind = "DAY_OFF"
	BlockBreak   BlockKind = "BREAK"
	BlockAbsence BlockKind = "ABSENCE"
)

// BlockedSlot is a concrete absolute-time range during which a barber
// cannot be booked, materialized for calendar rendering. Consumers must not
// rely on output ordering.
type BlockedSlot struct {
	BarberID uint      `json:"barber_id"`
	Kind     BlockKind `json:"kind"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Reason   string    `json:"reason,omitempty"`
}
