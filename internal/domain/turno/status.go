package turno

// ===============================
// Turno Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// ParseStatus accepts exactly the five recognized labels.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s), true
	}
	return "", false
}

// Terminal states admit no further state change or reschedule; they act as
// soft-deletes, rows are never removed.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// LiveStatuses are the states that occupy a barber's calendar for conflict
// purposes.
func LiveStatuses() []string {
	return []string{string(StatusPending), string(StatusInProgress)}
}
