package turno

import (
	"context"
	"time"

	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/timeutil"
)

// ComputeBlockedSlots expands recurring schedules, breaks and absences into
// the flat list of blocked calendar ranges the dashboard renders.
type ComputeBlockedSlots struct {
	repos domain.Repositories
	clock *timeutil.Clock
}

func NewComputeBlockedSlots(
	repos domain.Repositories,
	clock *timeutil.Clock,
) *ComputeBlockedSlots {
	return &ComputeBlockedSlots{
		repos: repos,
		clock: clock,
	}
}

// Execute walks the range day by day in UTC, inclusive on both ends. Per
// staff member and day: no schedule row for the local weekday emits one
// DAY_OFF block over the whole local day, otherwise each break emits a
// BREAK block with its "HH:MM" bounds converted to absolute instants.
// Absences are appended verbatim, their bounds are already absolute.
func (uc *ComputeBlockedSlots) Execute(
	ctx context.Context,
	barbershopID uint,
	rangeStart time.Time,
	rangeEnd time.Time,
) ([]domain.BlockedSlot, error) {

	staff, err := uc.repos.Staff.ListActiveStaff(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	daysByStaff := make(map[uint]map[int]*scheduleDay, len(staff))
	for _, s := range staff {
		days, err := uc.repos.Schedules.ListDays(ctx, s.ID)
		if err != nil {
			return nil, err
		}

		byWeekday := make(map[int]*scheduleDay, len(days))
		for i := range days {
			d := days[i]

			breaks := make([][2]int, 0, len(d.Breaks))
			for _, br := range d.Breaks {
				breaks = append(breaks, [2]int{
					timeutil.ParseClock(br.StartTime),
					timeutil.ParseClock(br.EndTime),
				})
			}
			byWeekday[d.Weekday] = &scheduleDay{breaks: breaks}
		}
		daysByStaff[s.ID] = byWeekday
	}

	slots := []domain.BlockedSlot{}

	for d := rangeStart.UTC(); !d.After(rangeEnd.UTC()); d = d.Add(24 * time.Hour) {
		weekday := int(uc.clock.Weekday(d))

		for _, s := range staff {
			day, works := daysByStaff[s.ID][weekday]
			if !works {
				start, end := uc.clock.DayBounds(d)
				slots = append(slots, domain.BlockedSlot{
					BarberID: s.ID,
					Kind:     domain.BlockDayOff,
					Start:    start,
					End:      end,
				})
				continue
			}

			for _, br := range day.breaks {
				slots = append(slots, domain.BlockedSlot{
					BarberID: s.ID,
					Kind:     domain.BlockBreak,
					Start:    uc.clock.InstantAt(d, br[0]),
					End:      uc.clock.InstantAt(d, br[1]),
				})
			}
		}
	}

	absences, err := uc.repos.Absences.ListForTenantOverlapping(
		ctx,
		barbershopID,
		rangeStart,
		rangeEnd,
	)
	if err != nil {
		return nil, err
	}

	for _, ab := range absences {
		slots = append(slots, domain.BlockedSlot{
			BarberID: ab.BarberID,
			Kind:     domain.BlockAbsence,
			Start:    ab.StartAt,
			End:      ab.EndAt,
			Reason:   ab.Reason,
		})
	}

	return slots, nil
}

type scheduleDay struct {
	breaks [][2]int
}
