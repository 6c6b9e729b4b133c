package timesheet

import (
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

// BuildMonthlyLedger walks every calendar day of the month, evaluates each
// through DailyBalance, and accumulates the monthly total and the pending
// list. The computation is pure and deterministic: identical inputs yield
// identical output on every recomputation.
func BuildMonthlyLedger(emp employee.Employee, month time.Time, in timesheet.MonthInputs) timesheet.MonthlyLedger {
	first := timefmt.MonthStart(month)
	last := timefmt.MonthEnd(month)

	result := timesheet.MonthlyLedger{
		EmployeeID:   emp.ID,
		Month:        first,
		Days:         make([]timesheet.DayBalance, 0, 31),
		PendingDates: []time.Time{},
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		balance := DailyBalance(emp, day, in)
		result.Days = append(result.Days, balance)
		result.TotalMinutes += balance.BalanceMinutes
		if balance.Pending {
			result.PendingDates = append(result.PendingDates, balance.Date)
		}
	}

	return result
}
