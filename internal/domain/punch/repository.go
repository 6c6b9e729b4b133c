package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for punch records.
type PunchRepository interface {
	// ListByRange retrieves all punches for an employee in [from, to],
	// ordered by date then type.
	ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]PunchRecord, error)

	// Upsert inserts or overwrites the record for (employee, date, type).
	// Later edits overwrite, never duplicate.
	Upsert(ctx context.Context, record PunchRecord) (PunchRecord, error)

	// Delete removes the record for (employee, date, type).
	Delete(ctx context.Context, employeeID string, date time.Time, punchType PunchType) error
}
