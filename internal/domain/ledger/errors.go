package ledger

import "errors"

var (
	// ErrLedgerConflict is returned when closing a month that already has
	// a ledger entry. The caller must reopen first.
	ErrLedgerConflict = errors.New("month already closed for this employee")

	// ErrNotClosed is returned when reopening a month that is still open.
	ErrNotClosed = errors.New("month is not closed")

	// ErrNotProvisioned is returned by close-and-settle when no payroll
	// line exists for the period. No partial write may occur.
	ErrNotProvisioned = errors.New("no provisioned payroll line for this period")

	// ErrEditAfterClose is returned when mutating punches or abonos while
	// the month's ledger is closed or paid.
	ErrEditAfterClose = errors.New("month is closed, reopen it before editing")
)
