package timesheet

import (
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

// WorkedMinutes computes the total worked minutes for one day from up to
// four (already normalized) punches. The second return is false when the
// day carries no usable data.
//
// The morning segment is break start minus entry, the afternoon segment is
// exit minus break end, each only when both ends are present and clamped
// at zero. When the segment sum is zero but entry and exit both exist the
// calculation falls back to exit minus entry, so a day punched without a
// lunch break still keeps its hours.
func WorkedMinutes(punches punch.DayPunches) (int, bool) {
	if !punches.Any() {
		return 0, false
	}

	entry := timefmt.ClockMinutes(punches.Entry)
	breakStart := timefmt.ClockMinutes(punches.BreakStart)
	breakEnd := timefmt.ClockMinutes(punches.BreakEnd)
	exit := timefmt.ClockMinutes(punches.Exit)

	total := 0
	if entry != nil && breakStart != nil {
		total += clampNonNegative(*breakStart - *entry)
	}
	if breakEnd != nil && exit != nil {
		total += clampNonNegative(*exit - *breakEnd)
	}

	if total <= 0 && entry != nil && exit != nil {
		total = *exit - *entry
	}

	if total <= 0 {
		return 0, false
	}
	return total, true
}
