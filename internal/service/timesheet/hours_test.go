package timesheet

import (
	"testing"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
)

// str and the schedule builders below are shared across the engine tests.
func str(s string) *string {
	return &s
}

func weekdayDetail(weekday int, entry, breakStart, breakEnd, exit string) employee.ScheduleDetail {
	d := employee.ScheduleDetail{Weekday: weekday}
	if entry != "" {
		d.Entry = str(entry)
	}
	if breakStart != "" {
		d.BreakStart = str(breakStart)
	}
	if breakEnd != "" {
		d.BreakEnd = str(breakEnd)
	}
	if exit != "" {
		d.Exit = str(exit)
	}
	return d
}

// testEmployee has a Monday-Friday 08:00-12:00 / 13:00-17:00 jornada,
// five minutes of tolerance, and no demission date.
func testEmployee() employee.Employee {
	emp := employee.Employee{
		ID:               "emp-1",
		CompanyID:        "co-1",
		Name:             "Jose da Silva",
		AdmissionDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ToleranceMinutes: 5,
	}
	for weekday := 1; weekday <= 5; weekday++ {
		emp.Schedule = append(emp.Schedule, weekdayDetail(weekday, "08:00", "12:00", "13:00", "17:00"))
	}
	return emp
}

func TestResolveSchedule(t *testing.T) {
	emp := testEmployee()

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	detail, ok := ResolveSchedule(emp, monday)
	assert.True(t, ok)
	assert.Equal(t, 1, detail.Weekday)

	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	_, ok = ResolveSchedule(emp, sunday)
	assert.False(t, ok)
}

func TestClassifyDay(t *testing.T) {
	emp := testEmployee()
	// Saturday carries a detail with no clock times: a deliberate day off.
	emp.Schedule = append(emp.Schedule, employee.ScheduleDetail{Weekday: 6})

	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, DayKindWorkday, ClassifyDay(emp, monday))
	assert.Equal(t, DayKindDayOff, ClassifyDay(emp, saturday))
	assert.Equal(t, DayKindUnconfigured, ClassifyDay(emp, sunday))
}

func TestExpectedMinutes(t *testing.T) {
	cases := []struct {
		name   string
		detail employee.ScheduleDetail
		want   int
	}{
		{"two segments", weekdayDetail(1, "08:00", "12:00", "13:00", "17:00"), 480},
		{"no break", weekdayDetail(1, "08:00", "", "", "16:00"), 480},
		{"half day", weekdayDetail(6, "08:00", "", "", "12:00"), 240},
		{"missing exit", weekdayDetail(1, "08:00", "", "", ""), 0},
		{"empty detail", employee.ScheduleDetail{Weekday: 0}, 0},
		{"inverted break clamps morning segment", weekdayDetail(1, "08:00", "07:00", "07:30", "17:00"), 570},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ExpectedMinutes(c.detail))
		})
	}
}

func TestWorkedMinutes(t *testing.T) {
	cases := []struct {
		name     string
		punches  punch.DayPunches
		want     int
		wantData bool
	}{
		{
			"full day",
			punch.DayPunches{Entry: str("08:00"), BreakStart: str("12:00"), BreakEnd: str("13:00"), Exit: str("17:00")},
			480, true,
		},
		{
			"entry and exit only",
			punch.DayPunches{Entry: str("08:00"), Exit: str("16:00")},
			480, true,
		},
		{
			"missing break end counts morning only",
			punch.DayPunches{Entry: str("08:00"), BreakStart: str("12:00"), Exit: str("17:00")},
			240, true,
		},
		{
			"afternoon only",
			punch.DayPunches{BreakEnd: str("13:00"), Exit: str("17:00")},
			240, true,
		},
		{
			"no punches",
			punch.DayPunches{},
			0, false,
		},
		{
			"entry only",
			punch.DayPunches{Entry: str("08:00")},
			0, false,
		},
		{
			"exit before entry",
			punch.DayPunches{Entry: str("17:00"), Exit: str("08:00")},
			0, false,
		},
		{
			"inverted morning clamps to afternoon",
			punch.DayPunches{Entry: str("12:30"), BreakStart: str("12:00"), BreakEnd: str("13:00"), Exit: str("17:00")},
			240, true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, hasData := WorkedMinutes(c.punches)
			assert.Equal(t, c.wantData, hasData)
			assert.Equal(t, c.want, got)
		})
	}
}
