package http

import (
	"net/http"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/payroll"
	"github.com/construtec/ponto-backend-go/internal/handler/http/response"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetMonthValue(w http.ResponseWriter, r *http.Request)
	GetAdvance(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

type payrollValueResponse struct {
	EmployeeID string `json:"employee_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Amount     string `json:"amount"`
}

// GetMonthValue returns the payable amount for /{month}.
func (h *payrollHandlerImpl) GetMonthValue(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	month, err := time.Parse("2006-01", chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Invalid month, expected yyyy-mm", nil)
		return
	}

	today := timefmt.DayStart(time.Now().UTC())
	amount, err := h.payrollService.ComputeMonthValue(r.Context(), employeeID, companyID, month, today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payrollValueResponse{
		EmployeeID: employeeID,
		From:       timefmt.DateKey(timefmt.MonthStart(month)),
		To:         timefmt.DateKey(timefmt.MonthEnd(month)),
		Amount:     amount.StringFixed(2),
	})
}

// GetAdvance returns the vale amount for ?from=yyyy-mm-dd&to=yyyy-mm-dd.
func (h *payrollHandlerImpl) GetAdvance(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	from, err := timefmt.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, "Invalid from date, expected yyyy-mm-dd", nil)
		return
	}
	to, err := timefmt.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, "Invalid to date, expected yyyy-mm-dd", nil)
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from", nil)
		return
	}

	today := timefmt.DayStart(time.Now().UTC())
	amount, err := h.payrollService.ComputeAdvance(r.Context(), employeeID, companyID, from, to, today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payrollValueResponse{
		EmployeeID: employeeID,
		From:       timefmt.DateKey(from),
		To:         timefmt.DateKey(to),
		Amount:     amount.StringFixed(2),
	})
}
