package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CloseAndSettleResult is the combined outcome of banking the month and
// settling its payroll line.
type CloseAndSettleResult struct {
	Entry         MonthlyLedgerEntry
	SettledAmount decimal.Decimal
	PayrollLineID string
}

// LedgerService governs the open -> closed -> paid lifecycle. Transitions
// are the only stateful operations in the engine and raise hard errors;
// they never retry silently.
type LedgerService interface {
	// Status resolves the lifecycle state for an employee-month.
	Status(ctx context.Context, employeeID, companyID string, month time.Time) (LedgerStatus, *MonthlyLedgerEntry, error)

	// CloseMonth banks the aggregated monthly total. Fails with
	// ErrLedgerConflict when an entry already exists.
	CloseMonth(ctx context.Context, employeeID, companyID, closedBy string, month, today time.Time) (MonthlyLedgerEntry, error)

	// CloseAndSettle banks the month and marks the pre-provisioned payroll
	// line paid with the computed value, atomically. Fails with
	// ErrNotProvisioned before any ledger write when the line is missing.
	CloseAndSettle(ctx context.Context, employeeID, companyID, closedBy string, month, today time.Time) (CloseAndSettleResult, error)

	// ReopenMonth reverses any payroll settlement and deletes the ledger
	// entry. Fails with ErrNotClosed when the month is open.
	ReopenMonth(ctx context.Context, employeeID, companyID string, month time.Time) error
}
