package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollLineStatus enum
type PayrollLineStatus string

const (
	LineStatusProvisioned PayrollLineStatus = "provisioned"
	LineStatusPaid        PayrollLineStatus = "paid"
)

// PayrollLine is the provisioned payroll row for one employee-month. It is
// created by the payroll provisioning run (outside this service) and only
// ever updated here: settle marks it paid, reopen reverts it.
type PayrollLine struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Month      time.Time // first-of-month, UTC
	Amount     decimal.Decimal
	Status     PayrollLineStatus
	PaidAt     *time.Time
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
