package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	CompanyID        string
	Name             string
	RegistrationCode *string
	AdmissionDate    time.Time
	DemissionDate    *time.Time
	ToleranceMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Loaded alongside the employee row
	Schedule    []ScheduleDetail
	RateHistory []RateHistoryEntry
}

// ActiveOn reports whether date falls inside [admission, demission].
// Days outside this range are fully inactive for every calculation.
func (e Employee) ActiveOn(date time.Time) bool {
	day := truncateDay(date)
	if day.Before(truncateDay(e.AdmissionDate)) {
		return false
	}
	if e.DemissionDate != nil && day.After(truncateDay(*e.DemissionDate)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScheduleDetail is one weekday of the employee's jornada. Clock fields are
// "HH:MM" strings; nil or empty means the field is not configured.
type ScheduleDetail struct {
	ID         string
	EmployeeID string
	Weekday    int // 0=Sunday ... 6=Saturday
	Entry      *string
	BreakStart *string
	BreakEnd   *string
	Exit       *string
}

// IsWorkday reports whether the weekday has both an entry and an exit
// configured. Break times are optional.
func (d ScheduleDetail) IsWorkday() bool {
	return present(d.Entry) && present(d.Exit)
}

// HasBreak reports whether both break times are configured. A schedule
// without a break does not require break punches.
func (d ScheduleDetail) HasBreak() bool {
	return present(d.BreakStart) && present(d.BreakEnd)
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// RateHistoryEntry is one version of the employee's daily pay rate.
// The list is append-only and kept sorted ascending by EffectiveFrom.
type RateHistoryEntry struct {
	ID            string
	EmployeeID    string
	EffectiveFrom time.Time
	DailyRate     decimal.Decimal
	CreatedAt     time.Time
}
