package punch

import (
	"time"

	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	"github.com/construtec/ponto-backend-go/internal/pkg/validator"
)

// UpsertPunchRequest is a manual punch edit. The editor identity comes
// from the token claims, not the body.
type UpsertPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // yyyy-mm-dd
	Type       string `json:"type"`
	ClockTime  string `json:"clock_time"` // HH:MM

	// Filled by the handler
	EditedBy string `json:"-"`
}

func (r UpsertPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be yyyy-mm-dd"})
	}
	if !IsValidPunchType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of entrada, inicio_intervalo, fim_intervalo, saida"})
	}
	if !validator.IsValidClock(r.ClockTime) {
		errs = append(errs, validator.ValidationError{Field: "clock_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeletePunchRequest removes a single punch field from a day.
type DeletePunchRequest struct {
	EmployeeID string
	Date       time.Time
	Type       PunchType
}

type PunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	ClockTime  string  `json:"clock_time"`
	ManualEdit bool    `json:"manual_edit"`
	EditedBy   *string `json:"edited_by,omitempty"`
	EditedAt   *string `json:"edited_at,omitempty"`
}

func ToResponse(p PunchRecord) PunchResponse {
	resp := PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       timefmt.DateKey(p.Date),
		Type:       string(p.Type),
		ClockTime:  p.ClockTime,
		ManualEdit: p.ManualEdit,
	}
	if p.Audit != nil {
		editedAt := p.Audit.EditedAt.UTC().Format(time.RFC3339)
		resp.EditedBy = &p.Audit.EditedBy
		resp.EditedAt = &editedAt
	}
	return resp
}
