package timesheet

import (
	"math"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

// weekendMultiplier is the pay factor applied to minutes worked on
// Saturdays and Sundays.
const weekendMultiplier = 1.5

// DailyBalance evaluates one calendar day for one employee. The policy
// precedence is: inactive range, future date, weekend, abono, holiday,
// ordinary workday. Today must be supplied by the caller; the engine never
// reads the system clock.
func DailyBalance(emp employee.Employee, date time.Time, in timesheet.MonthInputs) timesheet.DayBalance {
	day := timefmt.DayStart(date)
	today := timefmt.DayStart(in.Today)

	result := timesheet.DayBalance{
		Date:   day,
		Active: emp.ActiveOn(day),
	}
	if !result.Active {
		return result
	}

	weekday := int(day.Weekday())
	result.Weekend = weekday == 0 || weekday == 6
	result.Holiday = in.HolidayOn(day)
	result.Abono = in.AbonoOn(day)

	detail, hasSchedule := ResolveSchedule(emp, day)
	var detailPtr *employee.ScheduleDetail
	if hasSchedule {
		detailPtr = &detail
	}

	normalized := NormalizeDay(in.PunchesOn(day), detailPtr, emp.ToleranceMinutes)
	worked, hasData := WorkedMinutes(normalized)
	if hasData {
		result.WorkedMinutes = worked
	}

	// Not yet realized
	if day.After(today) {
		return result
	}

	if result.Weekend {
		// Weekends carry no deficit; worked minutes pay at 1.5x.
		if hasData && worked > 0 {
			result.BalanceMinutes = int(math.Round(float64(worked) * weekendMultiplier))
		}
		return result
	}

	expected := 0
	if hasSchedule && detail.IsWorkday() {
		expected = ExpectedMinutes(detail)
	}

	switch {
	case result.Abono:
		result.ExpectedMinutes = expected
		result.BalanceMinutes = 0
	case result.Holiday != nil:
		expectedOnHoliday := 0
		if *result.Holiday == calendar.HolidayHalfDay {
			expectedOnHoliday = expected / 2
		}
		result.ExpectedMinutes = expectedOnHoliday
		result.BalanceMinutes = worked - expectedOnHoliday
	case hasData && worked > 0:
		result.ExpectedMinutes = expected
		result.BalanceMinutes = worked - expected
	default:
		// No punches, no excuse: full-day deficit.
		result.ExpectedMinutes = expected
		result.BalanceMinutes = -expected
	}

	result.Pending = isPending(day, today, detailPtr, in)
	return result
}

// isPending flags an expected workday with missing required punches and no
// excusing holiday or abono. Pending days are surfaced for correction but
// never change the numeric balance.
func isPending(day, today time.Time, detail *employee.ScheduleDetail, in timesheet.MonthInputs) bool {
	if day.After(today) {
		return false
	}
	weekday := int(day.Weekday())
	if weekday == 0 || weekday == 6 {
		return false
	}
	if detail == nil || !detail.IsWorkday() {
		return false
	}
	if in.HolidayOn(day) != nil || in.AbonoOn(day) {
		return false
	}

	punches := in.PunchesOn(day)
	if missing(punches.Entry) || missing(punches.Exit) {
		return true
	}
	if detail.HasBreak() && (missing(punches.BreakStart) || missing(punches.BreakEnd)) {
		return true
	}
	return false
}

func missing(s *string) bool {
	return s == nil || *s == ""
}
