package ledger

import "time"

// LedgerStatus is the banco-de-horas lifecycle for one employee-month.
// A month with no MonthlyLedgerEntry row is Open; closing creates the row
// and reopening deletes it, so persisted rows are only Closed or Paid.
type LedgerStatus string

const (
	StatusOpen   LedgerStatus = "open"
	StatusClosed LedgerStatus = "closed"
	StatusPaid   LedgerStatus = "paid"
)

// MonthlyLedgerEntry banks a month's aggregated balance. Unique per
// (employee, month).
type MonthlyLedgerEntry struct {
	ID           string
	EmployeeID   string
	Month        time.Time // first-of-month, UTC
	Status       LedgerStatus
	SaldoMinutos int
	ClosedBy     *string
	ClosedAt     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
