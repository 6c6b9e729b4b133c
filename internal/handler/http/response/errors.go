package response

import (
	"errors"
	"net/http"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/domain/ledger"
	"github.com/construtec/ponto-backend-go/internal/domain/payroll"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrAbonoNotFound):
		NotFound(w, "Abono record not found")
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")
	case errors.Is(err, calendar.ErrAbonoExists):
		Conflict(w, "Abono already exists for this date")

	// Ledger domain errors: these guard financial correctness and must
	// surface as explicit, actionable messages.
	case errors.Is(err, ledger.ErrLedgerConflict):
		Conflict(w, "Month already closed - reopen it first")
	case errors.Is(err, ledger.ErrNotClosed):
		Conflict(w, "Month is not closed")
	case errors.Is(err, ledger.ErrNotProvisioned):
		UnprocessableEntity(w, "No provisioned payroll line for this period")
	case errors.Is(err, ledger.ErrEditAfterClose):
		Conflict(w, "Month is closed - reopen it before editing")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollLineNotFound):
		NotFound(w, "Payroll line not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
