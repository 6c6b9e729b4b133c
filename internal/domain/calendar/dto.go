package calendar

import (
	"github.com/construtec/ponto-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string  `json:"date"` // yyyy-mm-dd
	Type string  `json:"type"`
	Name *string `json:"name,omitempty"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be yyyy-mm-dd"})
	}
	if !IsValidHolidayType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be full or half_day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   string  `json:"id"`
	Date string  `json:"date"`
	Type string  `json:"type"`
	Name *string `json:"name,omitempty"`
}

func ToHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Date: h.Date.UTC().Format("2006-01-02"),
		Type: string(h.Type),
		Name: h.Name,
	}
}

func ToHolidayResponses(holidays []Holiday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, ToHolidayResponse(h))
	}
	return out
}

type CreateAbonoRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"` // yyyy-mm-dd
	AbsenceTypeID string  `json:"absence_type_id"`
	Notes         *string `json:"notes,omitempty"`
}

type AbonoResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	AbsenceTypeID string  `json:"absence_type_id"`
	Notes         *string `json:"notes,omitempty"`
}

func ToAbonoResponse(a AbonoRecord) AbonoResponse {
	return AbonoResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date.UTC().Format("2006-01-02"),
		AbsenceTypeID: a.AbsenceTypeID,
		Notes:         a.Notes,
	}
}

func (r CreateAbonoRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be yyyy-mm-dd"})
	}
	if validator.IsEmpty(r.AbsenceTypeID) {
		errs = append(errs, validator.ValidationError{Field: "absence_type_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
