package employee

import (
	"github.com/construtec/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ScheduleDetailInput is one weekday of a jornada replacement. Entry and
// Exit come together or not at all; a weekday without them is a rest day.
type ScheduleDetailInput struct {
	Weekday    int     `json:"weekday"`
	Entry      *string `json:"entry,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Exit       *string `json:"exit,omitempty"`
}

type ReplaceScheduleRequest struct {
	Details []ScheduleDetailInput `json:"details"`
}

func validClockField(s *string) bool {
	return s == nil || *s == "" || validator.IsValidClock(*s)
}

func (r ReplaceScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Details) == 0 {
		errs = append(errs, validator.ValidationError{Field: "details", Message: "at least one weekday is required"})
	}

	seen := map[int]bool{}
	for _, d := range r.Details {
		if d.Weekday < 0 || d.Weekday > 6 {
			errs = append(errs, validator.ValidationError{Field: "weekday", Message: "must be 0 (Sunday) through 6 (Saturday)"})
			continue
		}
		if seen[d.Weekday] {
			errs = append(errs, validator.ValidationError{Field: "weekday", Message: "each weekday may appear only once"})
		}
		seen[d.Weekday] = true

		if !validClockField(d.Entry) || !validClockField(d.BreakStart) ||
			!validClockField(d.BreakEnd) || !validClockField(d.Exit) {
			errs = append(errs, validator.ValidationError{Field: "details", Message: "clock times must be HH:MM"})
		}
		if (d.Entry == nil) != (d.Exit == nil) {
			errs = append(errs, validator.ValidationError{Field: "details", Message: "entry and exit must be set together"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r ReplaceScheduleRequest) ToDetails(employeeID string) []ScheduleDetail {
	details := make([]ScheduleDetail, 0, len(r.Details))
	for _, d := range r.Details {
		details = append(details, ScheduleDetail{
			EmployeeID: employeeID,
			Weekday:    d.Weekday,
			Entry:      d.Entry,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
			Exit:       d.Exit,
		})
	}
	return details
}

type AppendRateRequest struct {
	EffectiveFrom string `json:"effective_from"` // yyyy-mm-dd
	DailyRate     string `json:"daily_rate"`
}

func (r AppendRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be yyyy-mm-dd"})
	}
	rate, err := decimal.NewFromString(r.DailyRate)
	if err != nil || rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be a non-negative decimal"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleDetailResponse struct {
	Weekday    int     `json:"weekday"`
	Entry      *string `json:"entry,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	Workday    bool    `json:"workday"`
}

func ToScheduleResponse(details []ScheduleDetail) []ScheduleDetailResponse {
	out := make([]ScheduleDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, ScheduleDetailResponse{
			Weekday:    d.Weekday,
			Entry:      d.Entry,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
			Exit:       d.Exit,
			Workday:    d.IsWorkday(),
		})
	}
	return out
}

// DayScheduleResponse is the resolved jornada for a single date, the
// expected times the UI shows next to the punched ones.
type DayScheduleResponse struct {
	Date            string  `json:"date"`
	Workday         bool    `json:"workday"`
	Entry           *string `json:"entry,omitempty"`
	BreakStart      *string `json:"break_start,omitempty"`
	BreakEnd        *string `json:"break_end,omitempty"`
	Exit            *string `json:"exit,omitempty"`
	ExpectedMinutes int     `json:"expected_minutes"`
}

type RateHistoryResponse struct {
	ID            string `json:"id"`
	EffectiveFrom string `json:"effective_from"`
	DailyRate     string `json:"daily_rate"`
}

func ToRateResponse(e RateHistoryEntry) RateHistoryResponse {
	return RateHistoryResponse{
		ID:            e.ID,
		EffectiveFrom: e.EffectiveFrom.UTC().Format("2006-01-02"),
		DailyRate:     e.DailyRate.StringFixed(2),
	}
}
