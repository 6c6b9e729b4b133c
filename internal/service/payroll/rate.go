package payroll

import (
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	"github.com/shopspring/decimal"
)

// ResolveRate returns the daily rate in force on date: the latest history
// entry whose effective-from is on or before it. The history is assumed
// sorted ascending; an empty history or one that starts after the date
// resolves to zero.
func ResolveRate(history []employee.RateHistoryEntry, date time.Time) decimal.Decimal {
	day := timefmt.DayStart(date)
	rate := decimal.Zero
	for _, entry := range history {
		if timefmt.DayStart(entry.EffectiveFrom).After(day) {
			break
		}
		rate = entry.DailyRate
	}
	return rate
}
