package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	tsengine "github.com/construtec/ponto-backend-go/internal/service/timesheet"
	"github.com/shopspring/decimal"
)

// EmployeeService exposes the jornada and rate history for the UI and
// administrative edits.
type EmployeeService interface {
	GetSchedule(ctx context.Context, employeeID, companyID string) ([]employee.ScheduleDetail, error)
	ResolveDay(ctx context.Context, employeeID, companyID string, date time.Time) (employee.DayScheduleResponse, error)
	ReplaceSchedule(ctx context.Context, employeeID, companyID string, req employee.ReplaceScheduleRequest) error
	AppendRate(ctx context.Context, employeeID, companyID string, req employee.AppendRateRequest) (employee.RateHistoryEntry, error)
}

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// GetSchedule implements EmployeeService.
func (s *EmployeeServiceImpl) GetSchedule(ctx context.Context, employeeID, companyID string) ([]employee.ScheduleDetail, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp.Schedule, nil
}

// ResolveDay implements EmployeeService. It answers "what was expected of
// this employee on this date" without touching any punches.
func (s *EmployeeServiceImpl) ResolveDay(ctx context.Context, employeeID, companyID string, date time.Time) (employee.DayScheduleResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return employee.DayScheduleResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	day := timefmt.DayStart(date)
	resp := employee.DayScheduleResponse{Date: timefmt.DateKey(day)}

	detail, ok := tsengine.ResolveSchedule(emp, day)
	if !ok {
		slog.DebugContext(ctx, "weekday has no schedule detail configured",
			slog.String("employee_id", emp.ID),
			slog.Int("weekday", int(day.Weekday())),
			slog.String("kind", string(tsengine.ClassifyDay(emp, day))))
		return resp, nil
	}

	resp.Workday = detail.IsWorkday()
	resp.Entry = detail.Entry
	resp.BreakStart = detail.BreakStart
	resp.BreakEnd = detail.BreakEnd
	resp.Exit = detail.Exit
	resp.ExpectedMinutes = tsengine.ExpectedMinutes(detail)
	return resp, nil
}

// ReplaceSchedule implements EmployeeService.
func (s *EmployeeServiceImpl) ReplaceSchedule(ctx context.Context, employeeID, companyID string, req employee.ReplaceScheduleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.employeeRepo.ReplaceSchedule(ctx, employeeID, companyID, req.ToDetails(employeeID)); err != nil {
		return fmt.Errorf("failed to replace schedule: %w", err)
	}
	return nil
}

// AppendRate implements EmployeeService.
func (s *EmployeeServiceImpl) AppendRate(ctx context.Context, employeeID, companyID string, req employee.AppendRateRequest) (employee.RateHistoryEntry, error) {
	if err := req.Validate(); err != nil {
		return employee.RateHistoryEntry{}, err
	}

	// Scope check before the insert; rate_history has no company column.
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return employee.RateHistoryEntry{}, fmt.Errorf("failed to get employee: %w", err)
	}

	effectiveFrom, err := timefmt.ParseDate(req.EffectiveFrom)
	if err != nil {
		return employee.RateHistoryEntry{}, fmt.Errorf("invalid effective_from: %w", err)
	}
	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil {
		return employee.RateHistoryEntry{}, fmt.Errorf("invalid daily_rate: %w", err)
	}

	saved, err := s.employeeRepo.AppendRate(ctx, employee.RateHistoryEntry{
		EmployeeID:    emp.ID,
		EffectiveFrom: timefmt.DayStart(effectiveFrom),
		DailyRate:     rate,
	})
	if err != nil {
		return employee.RateHistoryEntry{}, fmt.Errorf("failed to append rate: %w", err)
	}
	return saved, nil
}
