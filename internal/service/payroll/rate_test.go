package payroll

import (
	"testing"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rateEntry(effectiveFrom time.Time, rate string) employee.RateHistoryEntry {
	return employee.RateHistoryEntry{
		EffectiveFrom: effectiveFrom,
		DailyRate:     decimal.RequireFromString(rate),
	}
}

func TestResolveRate(t *testing.T) {
	history := []employee.RateHistoryEntry{
		rateEntry(day(2024, 1, 1), "150.00"),
		rateEntry(day(2024, 7, 1), "165.50"),
		rateEntry(day(2025, 1, 1), "180.00"),
	}

	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{"before first entry", day(2023, 12, 31), "0"},
		{"on first effective date", day(2024, 1, 1), "150.00"},
		{"between versions", day(2024, 6, 30), "150.00"},
		{"on raise date", day(2024, 7, 1), "165.50"},
		{"after last raise", day(2025, 3, 15), "180.00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveRate(history, c.date)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"ResolveRate = %s, want %s", got, c.want)
		})
	}
}

// An earlier date never resolves to a later rate version.
func TestResolveRateMonotonic(t *testing.T) {
	history := []employee.RateHistoryEntry{
		rateEntry(day(2024, 1, 1), "150.00"),
		rateEntry(day(2024, 7, 1), "165.50"),
		rateEntry(day(2025, 1, 1), "180.00"),
	}

	prev := ResolveRate(history, day(2023, 6, 1))
	for d := day(2023, 6, 1); d.Before(day(2025, 6, 1)); d = d.AddDate(0, 0, 7) {
		current := ResolveRate(history, d)
		assert.True(t, current.GreaterThanOrEqual(prev),
			"rate regressed at %s: %s < %s", d.Format("2006-01-02"), current, prev)
		prev = current
	}
}

func TestResolveRateEmptyHistory(t *testing.T) {
	got := ResolveRate(nil, day(2025, 1, 1))
	assert.True(t, got.IsZero())
}

func TestResolveRateIgnoresClockComponent(t *testing.T) {
	history := []employee.RateHistoryEntry{
		rateEntry(time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), "150.00"),
	}
	got := ResolveRate(history, time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC))
	assert.True(t, got.Equal(decimal.RequireFromString("150.00")))
}
