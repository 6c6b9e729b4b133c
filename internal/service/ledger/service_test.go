package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	ledgerDomain "github.com/construtec/ponto-backend-go/internal/domain/ledger"
	payrollDomain "github.com/construtec/ponto-backend-go/internal/domain/payroll"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	getByIDFn func(ctx context.Context, id, companyID string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	return f.getByIDFn(ctx, id, companyID)
}

func (f *fakeEmployeeRepo) ReplaceSchedule(ctx context.Context, employeeID, companyID string, details []employee.ScheduleDetail) error {
	panic("not used")
}

func (f *fakeEmployeeRepo) AppendRate(ctx context.Context, entry employee.RateHistoryEntry) (employee.RateHistoryEntry, error) {
	panic("not used")
}

type fakeLedgerRepo struct {
	getFn    func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error)
	createFn func(ctx context.Context, entry ledgerDomain.MonthlyLedgerEntry) (ledgerDomain.MonthlyLedgerEntry, error)
	deleteFn func(ctx context.Context, id string) error

	created []ledgerDomain.MonthlyLedgerEntry
	deleted []string
}

func (f *fakeLedgerRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
	return f.getFn(ctx, employeeID, month)
}

func (f *fakeLedgerRepo) Create(ctx context.Context, entry ledgerDomain.MonthlyLedgerEntry) (ledgerDomain.MonthlyLedgerEntry, error) {
	f.created = append(f.created, entry)
	if f.createFn != nil {
		return f.createFn(ctx, entry)
	}
	entry.ID = "ledger-1"
	return entry, nil
}

func (f *fakeLedgerRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakePayrollLineRepo struct {
	getFn func(ctx context.Context, employeeID, companyID string, month time.Time) (payrollDomain.PayrollLine, error)

	paid     []string
	reverted []string
}

func (f *fakePayrollLineRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID, companyID string, month time.Time) (payrollDomain.PayrollLine, error) {
	return f.getFn(ctx, employeeID, companyID, month)
}

func (f *fakePayrollLineRepo) MarkPaid(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time) error {
	f.paid = append(f.paid, id)
	return nil
}

func (f *fakePayrollLineRepo) Revert(ctx context.Context, id string) error {
	f.reverted = append(f.reverted, id)
	return nil
}

type fakeTimesheetService struct {
	computeMonthlyFn func(ctx context.Context, employeeID, companyID string, month, today time.Time) (timesheet.MonthlyLedger, error)
}

func (f *fakeTimesheetService) ComputeMonthlyLedger(ctx context.Context, employeeID, companyID string, month, today time.Time) (timesheet.MonthlyLedger, error) {
	return f.computeMonthlyFn(ctx, employeeID, companyID, month, today)
}

func (f *fakeTimesheetService) ComputeDailyBalance(ctx context.Context, employeeID, companyID string, date, today time.Time) (timesheet.DayBalance, error) {
	panic("not used")
}

func (f *fakeTimesheetService) UpsertPunch(ctx context.Context, companyID string, req punch.UpsertPunchRequest) (punch.PunchRecord, error) {
	panic("not used")
}

func (f *fakeTimesheetService) DeletePunch(ctx context.Context, companyID string, req punch.DeletePunchRequest) error {
	panic("not used")
}

func (f *fakeTimesheetService) CreateAbono(ctx context.Context, companyID string, req calendar.CreateAbonoRequest) (calendar.AbonoRecord, error) {
	panic("not used")
}

func (f *fakeTimesheetService) DeleteAbono(ctx context.Context, companyID string, id, employeeID string) error {
	panic("not used")
}

type fakePayrollService struct {
	monthValueFn func(ctx context.Context, employeeID, companyID string, month, today time.Time) (decimal.Decimal, error)
}

func (f *fakePayrollService) ComputeMonthValue(ctx context.Context, employeeID, companyID string, month, today time.Time) (decimal.Decimal, error) {
	return f.monthValueFn(ctx, employeeID, companyID, month, today)
}

func (f *fakePayrollService) ComputeAdvance(ctx context.Context, employeeID, companyID string, start, end, today time.Time) (decimal.Decimal, error) {
	panic("not used")
}

// fakeTxManager runs the function inline; rollback semantics are covered
// by the repository integration tests.
type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	testMonth = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	testToday = time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	employeeRepo *fakeEmployeeRepo
	ledgerRepo   *fakeLedgerRepo
	payrollRepo  *fakePayrollLineRepo
	timesheetSvc *fakeTimesheetService
	payrollSvc   *fakePayrollService
	svc          ledgerDomain.LedgerService
}

func newFixture() *fixture {
	f := &fixture{
		employeeRepo: &fakeEmployeeRepo{
			getByIDFn: func(ctx context.Context, id, companyID string) (employee.Employee, error) {
				return employee.Employee{ID: id, CompanyID: companyID}, nil
			},
		},
		ledgerRepo: &fakeLedgerRepo{
			getFn: func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
				return nil, nil
			},
		},
		payrollRepo: &fakePayrollLineRepo{
			getFn: func(ctx context.Context, employeeID, companyID string, month time.Time) (payrollDomain.PayrollLine, error) {
				return payrollDomain.PayrollLine{ID: "line-1", Status: payrollDomain.LineStatusProvisioned}, nil
			},
		},
		timesheetSvc: &fakeTimesheetService{
			computeMonthlyFn: func(ctx context.Context, employeeID, companyID string, month, today time.Time) (timesheet.MonthlyLedger, error) {
				return timesheet.MonthlyLedger{EmployeeID: employeeID, Month: month, TotalMinutes: -120}, nil
			},
		},
		payrollSvc: &fakePayrollService{
			monthValueFn: func(ctx context.Context, employeeID, companyID string, month, today time.Time) (decimal.Decimal, error) {
				return decimal.RequireFromString("3300.00"), nil
			},
		},
	}
	f.svc = NewLedgerService(fakeTxManager{}, f.employeeRepo, f.ledgerRepo, f.payrollRepo, f.timesheetSvc, f.payrollSvc)
	return f
}

func TestLedgerStatus(t *testing.T) {
	t.Run("no entry means open", func(t *testing.T) {
		f := newFixture()
		status, entry, err := f.svc.Status(context.Background(), "emp-1", "co-1", testMonth)
		require.NoError(t, err)
		assert.Equal(t, ledgerDomain.StatusOpen, status)
		assert.Nil(t, entry)
	})

	t.Run("existing entry reports its status", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.getFn = func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
			return &ledgerDomain.MonthlyLedgerEntry{ID: "ledger-1", Status: ledgerDomain.StatusPaid}, nil
		}
		status, entry, err := f.svc.Status(context.Background(), "emp-1", "co-1", testMonth)
		require.NoError(t, err)
		assert.Equal(t, ledgerDomain.StatusPaid, status)
		require.NotNil(t, entry)
		assert.Equal(t, "ledger-1", entry.ID)
	})
}

func TestCloseMonth(t *testing.T) {
	t.Run("banks the aggregated total", func(t *testing.T) {
		f := newFixture()
		entry, err := f.svc.CloseMonth(context.Background(), "emp-1", "co-1", "admin-1", testMonth, testToday)
		require.NoError(t, err)

		assert.Equal(t, ledgerDomain.StatusClosed, entry.Status)
		assert.Equal(t, -120, entry.SaldoMinutos)
		require.NotNil(t, entry.ClosedBy)
		assert.Equal(t, "admin-1", *entry.ClosedBy)
		assert.Equal(t, testMonth, entry.Month)
		require.Len(t, f.ledgerRepo.created, 1)
	})

	t.Run("second close conflicts", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.getFn = func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
			return &ledgerDomain.MonthlyLedgerEntry{ID: "ledger-1", Status: ledgerDomain.StatusClosed}, nil
		}
		_, err := f.svc.CloseMonth(context.Background(), "emp-1", "co-1", "admin-1", testMonth, testToday)
		assert.ErrorIs(t, err, ledgerDomain.ErrLedgerConflict)
		assert.Empty(t, f.ledgerRepo.created)
	})

	t.Run("concurrent close loses on the uniqueness guard", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.createFn = func(ctx context.Context, entry ledgerDomain.MonthlyLedgerEntry) (ledgerDomain.MonthlyLedgerEntry, error) {
			return ledgerDomain.MonthlyLedgerEntry{}, ledgerDomain.ErrLedgerConflict
		}
		_, err := f.svc.CloseMonth(context.Background(), "emp-1", "co-1", "admin-1", testMonth, testToday)
		assert.ErrorIs(t, err, ledgerDomain.ErrLedgerConflict)
	})

	t.Run("normalizes the month argument", func(t *testing.T) {
		f := newFixture()
		mid := time.Date(2025, 3, 19, 14, 30, 0, 0, time.UTC)
		entry, err := f.svc.CloseMonth(context.Background(), "emp-1", "co-1", "admin-1", mid, testToday)
		require.NoError(t, err)
		assert.Equal(t, testMonth, entry.Month)
	})
}

func TestCloseAndSettle(t *testing.T) {
	t.Run("settles the line and banks as paid", func(t *testing.T) {
		f := newFixture()
		result, err := f.svc.CloseAndSettle(context.Background(), "emp-1", "co-1", "admin-1", testMonth, testToday)
		require.NoError(t, err)

		assert.Equal(t, ledgerDomain.StatusPaid, result.Entry.Status)
		assert.Equal(t, -120, result.Entry.SaldoMinutos)
		assert.Equal(t, "line-1", result.PayrollLineID)
		assert.True(t, result.SettledAmount.Equal(decimal.RequireFromString("3300.00")))
		assert.Equal(t, []string{"line-1"}, f.payrollRepo.paid)
		require.Len(t, f.ledgerRepo.created, 1)
	})

	t.Run("missing provisioned line aborts before any ledger write", func(t *testing.T) {
		f := newFixture()
		f.payrollRepo.getFn = func(ctx context.Context, employeeID, companyID string, month time.Time) (payrollDomain.PayrollLine, error) {
			return payrollDomain.PayrollLine{}, payrollDomain.ErrPayrollLineNotFound
		}
		_, err := f.svc.CloseAndSettle(context.Background(), "emp-1", "co-1", "admin-1", testMonth, testToday)
		assert.ErrorIs(t, err, ledgerDomain.ErrNotProvisioned)
		assert.Empty(t, f.ledgerRepo.created)
		assert.Empty(t, f.payrollRepo.paid)
	})

	t.Run("already closed month conflicts", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.getFn = func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
			return &ledgerDomain.MonthlyLedgerEntry{ID: "ledger-1", Status: ledgerDomain.StatusClosed}, nil
		}
		_, err := f.svc.CloseAndSettle(context.Background(), "emp-1", "co-1", "admin-1", testMonth, testToday)
		assert.ErrorIs(t, err, ledgerDomain.ErrLedgerConflict)
		assert.Empty(t, f.payrollRepo.paid)
	})
}

func TestReopenMonth(t *testing.T) {
	t.Run("open month cannot be reopened", func(t *testing.T) {
		f := newFixture()
		err := f.svc.ReopenMonth(context.Background(), "emp-1", "co-1", testMonth)
		assert.ErrorIs(t, err, ledgerDomain.ErrNotClosed)
		assert.Empty(t, f.ledgerRepo.deleted)
	})

	t.Run("closed month deletes the entry only", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.getFn = func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
			return &ledgerDomain.MonthlyLedgerEntry{ID: "ledger-1", Status: ledgerDomain.StatusClosed}, nil
		}
		err := f.svc.ReopenMonth(context.Background(), "emp-1", "co-1", testMonth)
		require.NoError(t, err)
		assert.Equal(t, []string{"ledger-1"}, f.ledgerRepo.deleted)
		assert.Empty(t, f.payrollRepo.reverted)
	})

	t.Run("paid month reverts the settlement too", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.getFn = func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
			return &ledgerDomain.MonthlyLedgerEntry{ID: "ledger-1", Status: ledgerDomain.StatusPaid}, nil
		}
		f.payrollRepo.getFn = func(ctx context.Context, employeeID, companyID string, month time.Time) (payrollDomain.PayrollLine, error) {
			return payrollDomain.PayrollLine{ID: "line-1", Status: payrollDomain.LineStatusPaid}, nil
		}
		err := f.svc.ReopenMonth(context.Background(), "emp-1", "co-1", testMonth)
		require.NoError(t, err)
		assert.Equal(t, []string{"line-1"}, f.payrollRepo.reverted)
		assert.Equal(t, []string{"ledger-1"}, f.ledgerRepo.deleted)
	})

	t.Run("delete failure surfaces", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.getFn = func(ctx context.Context, employeeID string, month time.Time) (*ledgerDomain.MonthlyLedgerEntry, error) {
			return &ledgerDomain.MonthlyLedgerEntry{ID: "ledger-1", Status: ledgerDomain.StatusClosed}, nil
		}
		f.ledgerRepo.deleteFn = func(ctx context.Context, id string) error {
			return errors.New("boom")
		}
		err := f.svc.ReopenMonth(context.Background(), "emp-1", "co-1", testMonth)
		assert.Error(t, err)
	})
}
