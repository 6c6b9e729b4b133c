package employee

import (
	"context"
)

// EmployeeRepository defines data access for employees. All methods take a
// companyID to prevent cross-company data access.
type EmployeeRepository interface {
	// GetByID retrieves the employee together with their schedule details
	// and rate history (rates sorted ascending by effective_from).
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ReplaceSchedule swaps the employee's jornada wholesale. Schedule
	// edits never patch individual weekdays.
	ReplaceSchedule(ctx context.Context, employeeID string, companyID string, details []ScheduleDetail) error

	// AppendRate appends a rate history entry. History is append-only.
	AppendRate(ctx context.Context, entry RateHistoryEntry) (RateHistoryEntry, error)
}
