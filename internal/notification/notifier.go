package notification

import (
	"context"
	"time"
)

// Message carries everything a booking confirmation or reminder needs.
type Message struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	StaffName   string
	ServiceName string

	Start time.Time
}

// Notifier delivers booking messages to the client, returning a provider
// delivery reference. Delivery is best effort: callers dispatch through the
// Dispatcher and never observe the result beyond logs.
type Notifier interface {
	SendAppointmentConfirmation(ctx context.Context, m Message) (string, error)
	SendAppointmentReminder(ctx context.Context, m Message) (string, error)
}
