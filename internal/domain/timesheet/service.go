package timesheet

import (
	"context"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
)

// InputsLoader assembles the read-only collaborator data for a date range.
// Payroll reuses the same loader so both engines see identical inputs.
type InputsLoader interface {
	LoadInputs(ctx context.Context, emp employee.Employee, from, to, today time.Time) (MonthInputs, error)
}

// TimesheetService computes balances and mediates punch/abono edits.
// Mutations are rejected while the month's ledger is closed or paid.
type TimesheetService interface {
	ComputeDailyBalance(ctx context.Context, employeeID, companyID string, date, today time.Time) (DayBalance, error)
	ComputeMonthlyLedger(ctx context.Context, employeeID, companyID string, month, today time.Time) (MonthlyLedger, error)

	UpsertPunch(ctx context.Context, companyID string, req punch.UpsertPunchRequest) (punch.PunchRecord, error)
	DeletePunch(ctx context.Context, companyID string, req punch.DeletePunchRequest) error

	CreateAbono(ctx context.Context, companyID string, req calendar.CreateAbonoRequest) (calendar.AbonoRecord, error)
	DeleteAbono(ctx context.Context, companyID string, id, employeeID string) error
}
