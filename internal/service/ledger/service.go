package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/ledger"
	"github.com/construtec/ponto-backend-go/internal/domain/payroll"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

type LedgerServiceImpl struct {
	tx           database.TxManager
	employeeRepo employee.EmployeeRepository
	ledgerRepo   ledger.LedgerRepository
	payrollRepo  payroll.PayrollLineRepository
	timesheetSvc timesheet.TimesheetService
	payrollSvc   payroll.PayrollService
}

func NewLedgerService(
	tx database.TxManager,
	employeeRepo employee.EmployeeRepository,
	ledgerRepo ledger.LedgerRepository,
	payrollRepo payroll.PayrollLineRepository,
	timesheetSvc timesheet.TimesheetService,
	payrollSvc payroll.PayrollService,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
		payrollRepo:  payrollRepo,
		timesheetSvc: timesheetSvc,
		payrollSvc:   payrollSvc,
	}
}

// Status implements ledger.LedgerService.
func (s *LedgerServiceImpl) Status(ctx context.Context, employeeID, companyID string, month time.Time) (ledger.LedgerStatus, *ledger.MonthlyLedgerEntry, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get employee: %w", err)
	}

	entry, err := s.ledgerRepo.GetByEmployeeAndMonth(ctx, emp.ID, timefmt.MonthStart(month))
	if err != nil {
		return "", nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	if entry == nil {
		return ledger.StatusOpen, nil, nil
	}
	return entry.Status, entry, nil
}

// CloseMonth implements ledger.LedgerService. The database uniqueness
// constraint on (employee, month) is the real guard; the pre-check only
// produces a friendlier error for the common case. Two concurrent closes
// cannot both succeed.
func (s *LedgerServiceImpl) CloseMonth(ctx context.Context, employeeID, companyID, closedBy string, month, today time.Time) (ledger.MonthlyLedgerEntry, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return ledger.MonthlyLedgerEntry{}, fmt.Errorf("failed to get employee: %w", err)
	}

	monthStart := timefmt.MonthStart(month)

	existing, err := s.ledgerRepo.GetByEmployeeAndMonth(ctx, emp.ID, monthStart)
	if err != nil {
		return ledger.MonthlyLedgerEntry{}, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	if existing != nil {
		return ledger.MonthlyLedgerEntry{}, ledger.ErrLedgerConflict
	}

	monthly, err := s.timesheetSvc.ComputeMonthlyLedger(ctx, emp.ID, companyID, monthStart, today)
	if err != nil {
		return ledger.MonthlyLedgerEntry{}, err
	}

	entry := ledger.MonthlyLedgerEntry{
		EmployeeID:   emp.ID,
		Month:        monthStart,
		Status:       ledger.StatusClosed,
		SaldoMinutos: monthly.TotalMinutes,
		ClosedBy:     &closedBy,
		ClosedAt:     time.Now().UTC(),
	}

	created, err := s.ledgerRepo.Create(ctx, entry)
	if err != nil {
		// Conflict from the uniqueness guard propagates unmodified.
		if errors.Is(err, ledger.ErrLedgerConflict) {
			return ledger.MonthlyLedgerEntry{}, ledger.ErrLedgerConflict
		}
		return ledger.MonthlyLedgerEntry{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return created, nil
}

// CloseAndSettle implements ledger.LedgerService. The payroll update and
// the ledger write happen inside one transaction: when the provisioned
// line is missing the whole operation aborts before any ledger write.
func (s *LedgerServiceImpl) CloseAndSettle(ctx context.Context, employeeID, companyID, closedBy string, month, today time.Time) (ledger.CloseAndSettleResult, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return ledger.CloseAndSettleResult{}, fmt.Errorf("failed to get employee: %w", err)
	}

	monthStart := timefmt.MonthStart(month)

	existing, err := s.ledgerRepo.GetByEmployeeAndMonth(ctx, emp.ID, monthStart)
	if err != nil {
		return ledger.CloseAndSettleResult{}, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	if existing != nil {
		return ledger.CloseAndSettleResult{}, ledger.ErrLedgerConflict
	}

	monthly, err := s.timesheetSvc.ComputeMonthlyLedger(ctx, emp.ID, companyID, monthStart, today)
	if err != nil {
		return ledger.CloseAndSettleResult{}, err
	}

	amount, err := s.payrollSvc.ComputeMonthValue(ctx, emp.ID, companyID, monthStart, today)
	if err != nil {
		return ledger.CloseAndSettleResult{}, err
	}

	var result ledger.CloseAndSettleResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		line, err := s.payrollRepo.GetByEmployeeAndMonth(txCtx, emp.ID, companyID, monthStart)
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollLineNotFound) {
				return ledger.ErrNotProvisioned
			}
			return fmt.Errorf("failed to get payroll line: %w", err)
		}

		now := time.Now().UTC()
		if err := s.payrollRepo.MarkPaid(txCtx, line.ID, amount, now); err != nil {
			return fmt.Errorf("failed to settle payroll line: %w", err)
		}

		entry := ledger.MonthlyLedgerEntry{
			EmployeeID:   emp.ID,
			Month:        monthStart,
			Status:       ledger.StatusPaid,
			SaldoMinutos: monthly.TotalMinutes,
			ClosedBy:     &closedBy,
			ClosedAt:     now,
		}
		created, err := s.ledgerRepo.Create(txCtx, entry)
		if err != nil {
			if errors.Is(err, ledger.ErrLedgerConflict) {
				return ledger.ErrLedgerConflict
			}
			return fmt.Errorf("failed to create ledger entry: %w", err)
		}

		result = ledger.CloseAndSettleResult{
			Entry:         created,
			SettledAmount: amount,
			PayrollLineID: line.ID,
		}
		return nil
	})
	if err != nil {
		return ledger.CloseAndSettleResult{}, err
	}
	return result, nil
}

// ReopenMonth implements ledger.LedgerService. A paid month has its
// payroll settlement reversed in the same transaction that removes the
// ledger entry, so no orphaned financial record can remain.
func (s *LedgerServiceImpl) ReopenMonth(ctx context.Context, employeeID, companyID string, month time.Time) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	monthStart := timefmt.MonthStart(month)

	entry, err := s.ledgerRepo.GetByEmployeeAndMonth(ctx, emp.ID, monthStart)
	if err != nil {
		return fmt.Errorf("failed to get ledger entry: %w", err)
	}
	if entry == nil {
		return ledger.ErrNotClosed
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if entry.Status == ledger.StatusPaid {
			line, err := s.payrollRepo.GetByEmployeeAndMonth(txCtx, emp.ID, companyID, monthStart)
			if err != nil && !errors.Is(err, payroll.ErrPayrollLineNotFound) {
				return fmt.Errorf("failed to get payroll line: %w", err)
			}
			if err == nil {
				if err := s.payrollRepo.Revert(txCtx, line.ID); err != nil {
					return fmt.Errorf("failed to revert payroll line: %w", err)
				}
			}
		}

		if err := s.ledgerRepo.Delete(txCtx, entry.ID); err != nil {
			return fmt.Errorf("failed to delete ledger entry: %w", err)
		}
		return nil
	})
}
