package timesheet

import (
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

// ResolveSchedule returns the jornada detail for date's weekday. The
// second return is false when no detail is configured for that weekday,
// which callers treat as a non-workday.
func ResolveSchedule(emp employee.Employee, date time.Time) (employee.ScheduleDetail, bool) {
	weekday := int(date.UTC().Weekday())
	for _, d := range emp.Schedule {
		if d.Weekday == weekday {
			return d, true
		}
	}
	return employee.ScheduleDetail{}, false
}

// DayKind classifies how a date's weekday resolves against the jornada.
type DayKind string

const (
	DayKindWorkday      DayKind = "workday"
	DayKindDayOff       DayKind = "day_off"
	DayKindUnconfigured DayKind = "unconfigured"
)

// ClassifyDay distinguishes a weekday the jornada marks as a day off from
// a weekday the jornada does not mention at all. Both expect zero minutes;
// an unconfigured weekday usually means an incomplete jornada, so callers
// log the distinction.
func ClassifyDay(emp employee.Employee, date time.Time) DayKind {
	detail, ok := ResolveSchedule(emp, date)
	switch {
	case !ok:
		return DayKindUnconfigured
	case detail.IsWorkday():
		return DayKindWorkday
	default:
		return DayKindDayOff
	}
}

// ExpectedMinutes computes the scheduled minutes for one weekday detail:
// entry to break start plus break end to exit, or entry to exit when no
// break is configured. Non-workdays expect zero.
func ExpectedMinutes(detail employee.ScheduleDetail) int {
	if !detail.IsWorkday() {
		return 0
	}

	entry := timefmt.ClockMinutes(detail.Entry)
	exit := timefmt.ClockMinutes(detail.Exit)
	if entry == nil || exit == nil {
		return 0
	}

	if detail.HasBreak() {
		breakStart := timefmt.ClockMinutes(detail.BreakStart)
		breakEnd := timefmt.ClockMinutes(detail.BreakEnd)
		if breakStart != nil && breakEnd != nil {
			total := clampNonNegative(*breakStart-*entry) + clampNonNegative(*exit-*breakEnd)
			if total > 0 {
				return total
			}
		}
	}

	return clampNonNegative(*exit - *entry)
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
