package payroll

import (
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	tsengine "github.com/construtec/ponto-backend-go/internal/service/timesheet"
	"github.com/shopspring/decimal"
)

// payable classifies one day for payroll purposes. Days up to today pay
// when punches exist or an abono falls on a scheduled workday; future days
// pay when they are scheduled workdays (the projection used by the vale
// feature). This is independent of the minute balance: a short day still
// pays its daily rate.
func payable(emp employee.Employee, date time.Time, in timesheet.MonthInputs) bool {
	day := timefmt.DayStart(date)
	if !emp.ActiveOn(day) {
		return false
	}

	detail, ok := tsengine.ResolveSchedule(emp, day)
	workday := ok && detail.IsWorkday()

	if day.After(timefmt.DayStart(in.Today)) {
		return workday
	}

	if in.PunchesOn(day).Any() {
		return true
	}
	return workday && in.AbonoOn(day)
}

// RangeValue sums the daily rate in force over every payable day in
// [start, end] inclusive.
func RangeValue(emp employee.Employee, start, end time.Time, in timesheet.MonthInputs) decimal.Decimal {
	total := decimal.Zero
	first := timefmt.DayStart(start)
	last := timefmt.DayStart(end)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if payable(emp, day, in) {
			total = total.Add(ResolveRate(emp.RateHistory, day))
		}
	}
	return total
}

// PayableDays returns the payable dates in [start, end], for auditing.
func PayableDays(emp employee.Employee, start, end time.Time, in timesheet.MonthInputs) []time.Time {
	var days []time.Time
	first := timefmt.DayStart(start)
	last := timefmt.DayStart(end)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if payable(emp, day, in) {
			days = append(days, day)
		}
	}
	return days
}
