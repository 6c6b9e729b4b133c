package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses an "HH:MM" (or "HH:MM:SS") clock-of-day string into
// minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	return hours*60 + minutes, nil
}

// ClockMinutes converts an optional "HH:MM" field into minutes since
// midnight. Absent, empty, or malformed values degrade to nil so that
// downstream calculators treat the punch as missing.
func ClockMinutes(s *string) *int {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	m, err := ParseClock(*s)
	if err != nil {
		return nil
	}
	return &m
}

// FormatSigned renders a minute count as a signed ±HH:MM string.
// Zero renders as "00:00".
func FormatSigned(minutes int) string {
	if minutes == 0 {
		return "00:00"
	}
	sign := "+"
	abs := minutes
	if minutes < 0 {
		sign = "-"
		abs = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, abs/60, abs%60)
}

// ParseSigned is the inverse of FormatSigned.
func ParseSigned(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	// Atoi accepts its own sign, so a second "-" or "+" would slip
	// through the strip above; require all-digit fields.
	if !allDigits(parts[0]) || !allDigits(parts[1]) {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	return sign * (hours*60 + minutes), nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DateKey formats a date as the canonical yyyy-mm-dd map key.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDate parses a yyyy-mm-dd string into a UTC-anchored date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DayStart truncates t to midnight UTC. All calendar-date comparisons in
// the engine go through this to avoid off-by-one-day shifts at boundaries.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month, midnight UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month, midnight UTC.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}
