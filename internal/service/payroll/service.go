package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/payroll"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	inputs       timesheet.InputsLoader
}

func NewPayrollService(employeeRepo employee.EmployeeRepository, inputs timesheet.InputsLoader) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		inputs:       inputs,
	}
}

// ComputeMonthValue implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeMonthValue(ctx context.Context, employeeID, companyID string, month, today time.Time) (decimal.Decimal, error) {
	first := timefmt.MonthStart(month)
	last := timefmt.MonthEnd(month)
	return s.ComputeAdvance(ctx, employeeID, companyID, first, last, today)
}

// ComputeAdvance implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeAdvance(ctx context.Context, employeeID, companyID string, start, end, today time.Time) (decimal.Decimal, error) {
	first := timefmt.DayStart(start)
	last := timefmt.DayStart(end)
	if last.Before(first) {
		return decimal.Zero, fmt.Errorf("invalid period: end before start")
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get employee: %w", err)
	}

	in, err := s.inputs.LoadInputs(ctx, emp, first, last, today)
	if err != nil {
		return decimal.Zero, err
	}

	return RangeValue(emp, first, last, in), nil
}
