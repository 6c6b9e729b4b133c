package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollLineRepository defines data access for provisioned payroll lines.
// This service updates lines, it never creates them.
type PayrollLineRepository interface {
	GetByEmployeeAndMonth(ctx context.Context, employeeID, companyID string, month time.Time) (PayrollLine, error)

	// MarkPaid sets status=paid with the settled amount and timestamp.
	MarkPaid(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time) error

	// Revert returns a paid line to provisioned, clearing paid_at.
	Revert(ctx context.Context, id string) error
}
