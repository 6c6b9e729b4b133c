package ledger

import (
	"context"
	"time"
)

// LedgerRepository defines data access for monthly ledger entries.
type LedgerRepository interface {
	// GetByEmployeeAndMonth returns nil when no entry exists (month open).
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*MonthlyLedgerEntry, error)

	// Create inserts the entry. The (employee, month) uniqueness guard is
	// enforced by the database; violations map to ErrLedgerConflict so
	// concurrent closes cannot both succeed.
	Create(ctx context.Context, entry MonthlyLedgerEntry) (MonthlyLedgerEntry, error)

	// Delete removes the entry, returning the month to open.
	Delete(ctx context.Context, id string) error
}
