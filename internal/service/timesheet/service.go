package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/ledger"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

type TimesheetServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	punchRepo    punch.PunchRepository
	holidayRepo  calendar.HolidayRepository
	abonoRepo    calendar.AbonoRepository
	ledgerRepo   ledger.LedgerRepository
}

func NewTimesheetService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
	holidayRepo calendar.HolidayRepository,
	abonoRepo calendar.AbonoRepository,
	ledgerRepo ledger.LedgerRepository,
) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		holidayRepo:  holidayRepo,
		abonoRepo:    abonoRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// LoadInputs assembles the read-only collaborator data for [from, to].
// Everything downstream of this call is pure computation.
func (s *TimesheetServiceImpl) LoadInputs(ctx context.Context, emp employee.Employee, from, to, today time.Time) (timesheet.MonthInputs, error) {
	inputs := timesheet.MonthInputs{
		Punches:  map[string]punch.DayPunches{},
		Holidays: map[string]calendar.HolidayType{},
		Abonos:   map[string]bool{},
		Today:    timefmt.DayStart(today),
	}

	punches, err := s.punchRepo.ListByRange(ctx, emp.ID, from, to)
	if err != nil {
		return timesheet.MonthInputs{}, fmt.Errorf("failed to list punches: %w", err)
	}
	for _, p := range punches {
		key := timefmt.DateKey(p.Date)
		day := inputs.Punches[key]
		day.Set(p.Type, p.ClockTime)
		inputs.Punches[key] = day
	}

	holidays, err := s.holidayRepo.ListByRange(ctx, emp.CompanyID, from, to)
	if err != nil {
		return timesheet.MonthInputs{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	for _, h := range holidays {
		inputs.Holidays[timefmt.DateKey(h.Date)] = h.Type
	}

	abonos, err := s.abonoRepo.ListByRange(ctx, emp.ID, from, to)
	if err != nil {
		return timesheet.MonthInputs{}, fmt.Errorf("failed to list abonos: %w", err)
	}
	for _, a := range abonos {
		inputs.Abonos[timefmt.DateKey(a.Date)] = true
	}

	return inputs, nil
}

// ComputeDailyBalance implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ComputeDailyBalance(ctx context.Context, employeeID, companyID string, date, today time.Time) (timesheet.DayBalance, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return timesheet.DayBalance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	day := timefmt.DayStart(date)
	inputs, err := s.LoadInputs(ctx, emp, day, day, today)
	if err != nil {
		return timesheet.DayBalance{}, err
	}

	return DailyBalance(emp, day, inputs), nil
}

// ComputeMonthlyLedger implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ComputeMonthlyLedger(ctx context.Context, employeeID, companyID string, month, today time.Time) (timesheet.MonthlyLedger, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return timesheet.MonthlyLedger{}, fmt.Errorf("failed to get employee: %w", err)
	}

	first := timefmt.MonthStart(month)
	last := timefmt.MonthEnd(month)
	inputs, err := s.LoadInputs(ctx, emp, first, last, today)
	if err != nil {
		return timesheet.MonthlyLedger{}, err
	}

	return BuildMonthlyLedger(emp, first, inputs), nil
}

// ensureMonthOpen rejects edits to any day whose month is closed or paid.
func (s *TimesheetServiceImpl) ensureMonthOpen(ctx context.Context, employeeID string, date time.Time) error {
	entry, err := s.ledgerRepo.GetByEmployeeAndMonth(ctx, employeeID, timefmt.MonthStart(date))
	if err != nil {
		return fmt.Errorf("failed to check ledger state: %w", err)
	}
	if entry != nil {
		return ledger.ErrEditAfterClose
	}
	return nil
}

// UpsertPunch implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) UpsertPunch(ctx context.Context, companyID string, req punch.UpsertPunchRequest) (punch.PunchRecord, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchRecord{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return punch.PunchRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return punch.PunchRecord{}, fmt.Errorf("invalid date: %w", err)
	}

	if err := s.ensureMonthOpen(ctx, emp.ID, date); err != nil {
		return punch.PunchRecord{}, err
	}

	record := punch.PunchRecord{
		EmployeeID: emp.ID,
		Date:       timefmt.DayStart(date),
		Type:       punch.PunchType(req.Type),
		ClockTime:  req.ClockTime,
		ManualEdit: true,
		Audit: &punch.EditAudit{
			EditedBy: req.EditedBy,
			EditedAt: time.Now().UTC(),
		},
	}

	saved, err := s.punchRepo.Upsert(ctx, record)
	if err != nil {
		return punch.PunchRecord{}, fmt.Errorf("failed to upsert punch: %w", err)
	}
	return saved, nil
}

// DeletePunch implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeletePunch(ctx context.Context, companyID string, req punch.DeletePunchRequest) error {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.ensureMonthOpen(ctx, emp.ID, req.Date); err != nil {
		return err
	}

	if err := s.punchRepo.Delete(ctx, emp.ID, timefmt.DayStart(req.Date), req.Type); err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	return nil
}

// CreateAbono implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CreateAbono(ctx context.Context, companyID string, req calendar.CreateAbonoRequest) (calendar.AbonoRecord, error) {
	if err := req.Validate(); err != nil {
		return calendar.AbonoRecord{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return calendar.AbonoRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return calendar.AbonoRecord{}, fmt.Errorf("invalid date: %w", err)
	}

	if err := s.ensureMonthOpen(ctx, emp.ID, date); err != nil {
		return calendar.AbonoRecord{}, err
	}

	abono := calendar.AbonoRecord{
		EmployeeID:    emp.ID,
		Date:          timefmt.DayStart(date),
		AbsenceTypeID: req.AbsenceTypeID,
		Notes:         req.Notes,
	}

	saved, err := s.abonoRepo.Create(ctx, abono)
	if err != nil {
		return calendar.AbonoRecord{}, fmt.Errorf("failed to create abono: %w", err)
	}
	return saved, nil
}

// DeleteAbono implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteAbono(ctx context.Context, companyID string, id, employeeID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	abono, err := s.abonoRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get abono: %w", err)
	}

	if err := s.ensureMonthOpen(ctx, emp.ID, abono.Date); err != nil {
		return err
	}

	if err := s.abonoRepo.Delete(ctx, id, emp.ID); err != nil {
		return fmt.Errorf("failed to delete abono: %w", err)
	}
	return nil
}
