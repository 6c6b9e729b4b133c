package punch

import "time"

// PunchType is the closed set of punch fields a day can carry. The values
// match the device-import vocabulary.
type PunchType string

const (
	TypeEntrada         PunchType = "entrada"
	TypeInicioIntervalo PunchType = "inicio_intervalo"
	TypeFimIntervalo    PunchType = "fim_intervalo"
	TypeSaida           PunchType = "saida"
)

var PunchTypeValues = []string{
	string(TypeEntrada),
	string(TypeInicioIntervalo),
	string(TypeFimIntervalo),
	string(TypeSaida),
}

func IsValidPunchType(s string) bool {
	switch PunchType(s) {
	case TypeEntrada, TypeInicioIntervalo, TypeFimIntervalo, TypeSaida:
		return true
	}
	return false
}

// EditAudit records who last touched a manually edited punch.
type EditAudit struct {
	EditedBy string
	EditedAt time.Time
}

// PunchRecord is one punch field for one employee-day. At most one record
// exists per (employee, date, type); edits overwrite in place.
type PunchRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time // UTC-anchored calendar date
	Type       PunchType
	ClockTime  string // "HH:MM"
	ManualEdit bool
	Audit      *EditAudit
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DayPunches is the assembled view of a single day's punches, keyed by
// type, as the calculators consume them.
type DayPunches struct {
	Entry      *string
	BreakStart *string
	BreakEnd   *string
	Exit       *string
}

// Any reports whether at least one punch exists for the day.
func (d DayPunches) Any() bool {
	return d.Entry != nil || d.BreakStart != nil || d.BreakEnd != nil || d.Exit != nil
}

// Set assigns the clock time for the given punch type.
func (d *DayPunches) Set(t PunchType, clock string) {
	switch t {
	case TypeEntrada:
		d.Entry = &clock
	case TypeInicioIntervalo:
		d.BreakStart = &clock
	case TypeFimIntervalo:
		d.BreakEnd = &clock
	case TypeSaida:
		d.Exit = &clock
	}
}
