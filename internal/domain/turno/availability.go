package turno

import (
	"context"
	"time"

	"github.com/TurnosCloud/turnos-api/internal/httperr"
	"github.com/TurnosCloud/turnos-api/internal/timeutil"
)

// Validator decides whether a barber can take a proposed [start, end)
// window. Checks run in a fixed order, staff-level before calendar-level,
// short-circuiting on the first failure so callers surface the most
// specific rejection.
type Validator struct {
	clock *timeutil.Clock
}

func NewValidator(clock *timeutil.Clock) *Validator {
	return &Validator{clock: clock}
}

// Validate must run inside the same transaction as the write that depends
// on it. excludeID skips one appointment in the booking-overlap check (a
// reschedule validating against itself); zero excludes nothing.
func (v *Validator) Validate(
	ctx context.Context,
	r Repositories,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	staff, err := r.Staff.GetStaff(ctx, barberID)
	if err != nil {
		return err
	}
	if staff == nil || !staff.Active {
		return httperr.ErrBusiness("staff_unavailable")
	}

	day, err := r.Schedules.GetDay(ctx, barberID, int(v.clock.Weekday(start)))
	if err != nil {
		return err
	}
	if day == nil {
		return httperr.ErrBusiness("no_schedule_for_day")
	}

	// Wall-clock minutes, not elapsed duration. A window crossing local
	// midnight is not representable here and stays unsupported.
	startMin := v.clock.MinutesOfDay(start)
	endMin := v.clock.MinutesOfDay(end)

	workStart := timeutil.ParseClock(day.StartTime)
	workEnd := timeutil.ParseClock(day.EndTime)
	if startMin < workStart || endMin > workEnd {
		return httperr.ErrBusiness("outside_working_hours")
	}

	for _, br := range day.Breaks {
		brStart := timeutil.ParseClock(br.StartTime)
		brEnd := timeutil.ParseClock(br.EndTime)

		if startMin < brEnd && endMin > brStart {
			return httperr.ErrBusiness("conflicts_with_break")
		}
	}

	absences, err := r.Absences.ListOverlapping(ctx, barberID, start, end)
	if err != nil {
		return err
	}
	if len(absences) > 0 {
		return httperr.ErrBusiness("staff_on_absence")
	}

	booked, err := r.Appointments.ListOverlapping(ctx, barberID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(booked) > 0 {
		return httperr.ErrBusiness("slot_already_booked")
	}

	return nil
}
