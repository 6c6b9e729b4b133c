package calendar

import "time"

// HolidayType distinguishes full holidays (expected minutes = 0) from
// half-day holidays (expected minutes = scheduled / 2).
type HolidayType string

const (
	HolidayFull    HolidayType = "full"
	HolidayHalfDay HolidayType = "half_day"
)

func IsValidHolidayType(s string) bool {
	switch HolidayType(s) {
	case HolidayFull, HolidayHalfDay:
		return true
	}
	return false
}

// Holiday is organization-scoped and independent of any employee.
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time // UTC-anchored calendar date
	Type      HolidayType
	Name      *string
	CreatedAt time.Time
}

// AbonoRecord is an approved/excused absence. Its presence on an expected
// workday forces that day's balance to zero regardless of punches.
type AbonoRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time // UTC-anchored calendar date
	AbsenceTypeID string
	Notes         *string
	CreatedAt     time.Time
}
