package turno

import (
	"github.com/TurnosCloud/turnos-api/internal/audit"
	"github.com/TurnosCloud/turnos-api/internal/notification"
)

// Post-commit collaborators, narrowed so use cases stay testable without
// the real channel-backed dispatchers.

type AuditTrail interface {
	Dispatch(ev audit.Event)
}

type ConfirmationSender interface {
	DispatchConfirmation(m notification.Message)
}
