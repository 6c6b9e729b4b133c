package timesheet

import (
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
)

// DayBalance is the outcome of evaluating one calendar day.
type DayBalance struct {
	Date            time.Time
	WorkedMinutes   int
	ExpectedMinutes int
	BalanceMinutes  int
	Pending         bool
	Weekend         bool
	Holiday         *calendar.HolidayType
	Abono           bool
	Active          bool // inside [admission, demission]
}

// MonthlyLedger is the aggregated result for one employee-month. Given
// unchanged inputs the same value is produced on every recomputation.
type MonthlyLedger struct {
	EmployeeID   string
	Month        time.Time // first-of-month, UTC
	Days         []DayBalance
	TotalMinutes int
	PendingDates []time.Time
}

// DailyBalances returns the date -> balance map view over Days.
func (m MonthlyLedger) DailyBalances() map[string]int {
	out := make(map[string]int, len(m.Days))
	for _, d := range m.Days {
		out[d.Date.Format("2006-01-02")] = d.BalanceMinutes
	}
	return out
}

// MonthInputs bundles the read-only collaborator data for one employee and
// a date range, keyed by yyyy-mm-dd. Today is threaded explicitly so the
// engine never reads the ambient clock.
type MonthInputs struct {
	Punches  map[string]punch.DayPunches
	Holidays map[string]calendar.HolidayType
	Abonos   map[string]bool
	Today    time.Time
}

// PunchesOn returns the assembled punches for a date.
func (in MonthInputs) PunchesOn(date time.Time) punch.DayPunches {
	return in.Punches[date.UTC().Format("2006-01-02")]
}

// HolidayOn returns the holiday type for a date, if any.
func (in MonthInputs) HolidayOn(date time.Time) *calendar.HolidayType {
	if t, ok := in.Holidays[date.UTC().Format("2006-01-02")]; ok {
		return &t
	}
	return nil
}

// AbonoOn reports whether an excused absence exists for a date.
func (in MonthInputs) AbonoOn(date time.Time) bool {
	return in.Abonos[date.UTC().Format("2006-01-02")]
}
