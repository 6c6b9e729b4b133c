package timesheet

import (
	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

// NormalizeClock snaps a punched clock time to the scheduled time when the
// difference is within the employee's tolerance window, in either
// direction. Absent values and zero tolerance pass the punch through
// unchanged; there is no error path.
func NormalizeClock(actual, scheduled *string, toleranceMinutes int) *string {
	if actual == nil || *actual == "" {
		return actual
	}
	if scheduled == nil || *scheduled == "" || toleranceMinutes <= 0 {
		return actual
	}

	actualMin := timefmt.ClockMinutes(actual)
	scheduledMin := timefmt.ClockMinutes(scheduled)
	if actualMin == nil || scheduledMin == nil {
		return actual
	}

	diff := *actualMin - *scheduledMin
	if diff < 0 {
		diff = -diff
	}
	if diff <= toleranceMinutes {
		return scheduled
	}
	return actual
}

// NormalizeDay applies the tolerance snap to each of the four punch fields
// against the corresponding scheduled times. A nil schedule leaves all
// punches untouched.
func NormalizeDay(punches punch.DayPunches, detail *employee.ScheduleDetail, toleranceMinutes int) punch.DayPunches {
	if detail == nil {
		return punches
	}
	return punch.DayPunches{
		Entry:      NormalizeClock(punches.Entry, detail.Entry, toleranceMinutes),
		BreakStart: NormalizeClock(punches.BreakStart, detail.BreakStart, toleranceMinutes),
		BreakEnd:   NormalizeClock(punches.BreakEnd, detail.BreakEnd, toleranceMinutes),
		Exit:       NormalizeClock(punches.Exit, detail.Exit, toleranceMinutes),
	}
}
