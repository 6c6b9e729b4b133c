package employee

import (
	"context"
	"testing"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	emp      employee.Employee
	replaced [][]employee.ScheduleDetail
	appended []employee.RateHistoryEntry
}

func (s *stubRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	return s.emp, nil
}

func (s *stubRepo) ReplaceSchedule(ctx context.Context, employeeID, companyID string, details []employee.ScheduleDetail) error {
	s.replaced = append(s.replaced, details)
	return nil
}

func (s *stubRepo) AppendRate(ctx context.Context, entry employee.RateHistoryEntry) (employee.RateHistoryEntry, error) {
	s.appended = append(s.appended, entry)
	entry.ID = "rate-1"
	return entry, nil
}

func str(s string) *string {
	return &s
}

func stubEmployee() employee.Employee {
	emp := employee.Employee{
		ID:            "emp-1",
		CompanyID:     "co-1",
		AdmissionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for weekday := 1; weekday <= 5; weekday++ {
		emp.Schedule = append(emp.Schedule, employee.ScheduleDetail{
			Weekday:    weekday,
			Entry:      str("08:00"),
			BreakStart: str("12:00"),
			BreakEnd:   str("13:00"),
			Exit:       str("17:00"),
		})
	}
	return emp
}

func TestResolveDay(t *testing.T) {
	svc := NewEmployeeService(&stubRepo{emp: stubEmployee()})

	t.Run("workday", func(t *testing.T) {
		monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		resolved, err := svc.ResolveDay(context.Background(), "emp-1", "co-1", monday)
		require.NoError(t, err)

		assert.True(t, resolved.Workday)
		assert.Equal(t, "2025-03-10", resolved.Date)
		assert.Equal(t, "08:00", *resolved.Entry)
		assert.Equal(t, 480, resolved.ExpectedMinutes)
	})

	t.Run("rest day", func(t *testing.T) {
		sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
		resolved, err := svc.ResolveDay(context.Background(), "emp-1", "co-1", sunday)
		require.NoError(t, err)

		assert.False(t, resolved.Workday)
		assert.Nil(t, resolved.Entry)
		assert.Zero(t, resolved.ExpectedMinutes)
	})
}

func TestReplaceScheduleValidation(t *testing.T) {
	repo := &stubRepo{emp: stubEmployee()}
	svc := NewEmployeeService(repo)

	t.Run("rejects duplicate weekdays", func(t *testing.T) {
		req := employee.ReplaceScheduleRequest{Details: []employee.ScheduleDetailInput{
			{Weekday: 1, Entry: str("08:00"), Exit: str("17:00")},
			{Weekday: 1, Entry: str("09:00"), Exit: str("18:00")},
		}}
		err := svc.ReplaceSchedule(context.Background(), "emp-1", "co-1", req)
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Empty(t, repo.replaced)
	})

	t.Run("rejects entry without exit", func(t *testing.T) {
		req := employee.ReplaceScheduleRequest{Details: []employee.ScheduleDetailInput{
			{Weekday: 1, Entry: str("08:00")},
		}}
		err := svc.ReplaceSchedule(context.Background(), "emp-1", "co-1", req)
		assert.Error(t, err)
	})

	t.Run("accepts a valid jornada", func(t *testing.T) {
		req := employee.ReplaceScheduleRequest{Details: []employee.ScheduleDetailInput{
			{Weekday: 1, Entry: str("08:00"), Exit: str("17:00")},
			{Weekday: 6, Entry: str("08:00"), Exit: str("12:00")},
			{Weekday: 0},
		}}
		err := svc.ReplaceSchedule(context.Background(), "emp-1", "co-1", req)
		require.NoError(t, err)
		require.Len(t, repo.replaced, 1)
		assert.Len(t, repo.replaced[0], 3)
		assert.Equal(t, "emp-1", repo.replaced[0][0].EmployeeID)
	})
}

func TestAppendRate(t *testing.T) {
	repo := &stubRepo{emp: stubEmployee()}
	svc := NewEmployeeService(repo)

	t.Run("appends a parsed rate", func(t *testing.T) {
		saved, err := svc.AppendRate(context.Background(), "emp-1", "co-1", employee.AppendRateRequest{
			EffectiveFrom: "2025-04-01",
			DailyRate:     "180.00",
		})
		require.NoError(t, err)

		assert.Equal(t, "rate-1", saved.ID)
		assert.True(t, saved.DailyRate.Equal(decimal.RequireFromString("180.00")))
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), saved.EffectiveFrom)
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		_, err := svc.AppendRate(context.Background(), "emp-1", "co-1", employee.AppendRateRequest{
			EffectiveFrom: "2025-04-01",
			DailyRate:     "-10",
		})
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Len(t, repo.appended, 1, "only the earlier valid append went through")
	})
}
