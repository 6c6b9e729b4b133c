package http

import (
	"net/http"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/ledger"
	"github.com/construtec/ponto-backend-go/internal/handler/http/response"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	"github.com/go-chi/chi/v5"
)

type LedgerHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	CloseMonth(w http.ResponseWriter, r *http.Request)
	CloseAndSettle(w http.ResponseWriter, r *http.Request)
	ReopenMonth(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{ledgerService: ledgerService}
}

type ledgerEntryResponse struct {
	ID           string  `json:"id,omitempty"`
	EmployeeID   string  `json:"employee_id"`
	Month        string  `json:"month"`
	Status       string  `json:"status"`
	SaldoMinutos int     `json:"saldo_minutos"`
	Saldo        string  `json:"saldo"` // signed ±HH:MM
	ClosedBy     *string `json:"closed_by,omitempty"`
	ClosedAt     *string `json:"closed_at,omitempty"`
}

func toEntryResponse(employeeID string, month time.Time, status ledger.LedgerStatus, entry *ledger.MonthlyLedgerEntry) ledgerEntryResponse {
	resp := ledgerEntryResponse{
		EmployeeID: employeeID,
		Month:      month.Format("2006-01"),
		Status:     string(status),
	}
	if entry != nil {
		closedAt := entry.ClosedAt.UTC().Format(time.RFC3339)
		resp.ID = entry.ID
		resp.SaldoMinutos = entry.SaldoMinutos
		resp.ClosedBy = entry.ClosedBy
		resp.ClosedAt = &closedAt
	}
	resp.Saldo = timefmt.FormatSigned(resp.SaldoMinutos)
	return resp
}

func monthParam(r *http.Request) (time.Time, error) {
	return time.Parse("2006-01", chi.URLParam(r, "month"))
}

func (h *ledgerHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	month, err := monthParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid month, expected yyyy-mm", nil)
		return
	}

	status, entry, err := h.ledgerService.Status(r.Context(), employeeID, companyID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEntryResponse(employeeID, timefmt.MonthStart(month), status, entry))
}

func (h *ledgerHandlerImpl) CloseMonth(w http.ResponseWriter, r *http.Request) {
	companyID, userID, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	month, err := monthParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid month, expected yyyy-mm", nil)
		return
	}

	today := timefmt.DayStart(time.Now().UTC())
	entry, err := h.ledgerService.CloseMonth(r.Context(), employeeID, companyID, userID, month, today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Month closed", toEntryResponse(employeeID, entry.Month, entry.Status, &entry))
}

func (h *ledgerHandlerImpl) CloseAndSettle(w http.ResponseWriter, r *http.Request) {
	companyID, userID, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	month, err := monthParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid month, expected yyyy-mm", nil)
		return
	}

	today := timefmt.DayStart(time.Now().UTC())
	result, err := h.ledgerService.CloseAndSettle(r.Context(), employeeID, companyID, userID, month, today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Month closed and settled", map[string]interface{}{
		"entry":           toEntryResponse(employeeID, result.Entry.Month, result.Entry.Status, &result.Entry),
		"settled_amount":  result.SettledAmount.StringFixed(2),
		"payroll_line_id": result.PayrollLineID,
	})
}

func (h *ledgerHandlerImpl) ReopenMonth(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	month, err := monthParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid month, expected yyyy-mm", nil)
		return
	}

	if err := h.ledgerService.ReopenMonth(r.Context(), employeeID, companyID, month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month reopened", nil)
}
