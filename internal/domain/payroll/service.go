package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollService derives payable amounts from the rate history. Payroll
// value counts days worked or excused, independent of the minute balance.
type PayrollService interface {
	// ComputeMonthValue returns the payable amount for a full month.
	ComputeMonthValue(ctx context.Context, employeeID, companyID string, month, today time.Time) (decimal.Decimal, error)

	// ComputeAdvance returns the payable amount for an arbitrary
	// sub-period [start, end], the "vale" feature. Future dates inside the
	// range count as payable when they fall on scheduled workdays.
	ComputeAdvance(ctx context.Context, employeeID, companyID string, start, end, today time.Time) (decimal.Decimal, error)
}
