package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/domain/timesheet"
	"github.com/construtec/ponto-backend-go/internal/handler/http/response"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	GetMonthlyLedger(w http.ResponseWriter, r *http.Request)
	GetDailyBalance(w http.ResponseWriter, r *http.Request)

	UpsertPunch(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)

	CreateAbono(w http.ResponseWriter, r *http.Request)
	DeleteAbono(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

// GetMonthlyLedger returns the daily balances, monthly total, and pending
// dates for ?month=yyyy-mm. Recomputing is idempotent, so the UI calls
// this after every edit.
func (h *timesheetHandlerImpl) GetMonthlyLedger(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	month, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Invalid month, expected yyyy-mm", nil)
		return
	}

	today := timefmt.DayStart(time.Now().UTC())
	result, err := h.timesheetService.ComputeMonthlyLedger(r.Context(), employeeID, companyID, month, today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet.ToLedgerResponse(result))
}

// GetDailyBalance returns one day's balance for ?date=yyyy-mm-dd.
func (h *timesheetHandlerImpl) GetDailyBalance(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	date, err := timefmt.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "Invalid date, expected yyyy-mm-dd", nil)
		return
	}

	today := timefmt.DayStart(time.Now().UTC())
	result, err := h.timesheetService.ComputeDailyBalance(r.Context(), employeeID, companyID, date, today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet.ToDayResponse(result))
}

func (h *timesheetHandlerImpl) UpsertPunch(w http.ResponseWriter, r *http.Request) {
	companyID, userID, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req punch.UpsertPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.EditedBy = userID

	saved, err := h.timesheetService.UpsertPunch(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch saved", punch.ToResponse(saved))
}

func (h *timesheetHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	date, err := timefmt.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "Invalid date, expected yyyy-mm-dd", nil)
		return
	}
	punchType := r.URL.Query().Get("type")
	if !punch.IsValidPunchType(punchType) {
		response.BadRequest(w, "Invalid punch type", nil)
		return
	}

	req := punch.DeletePunchRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Date:       date,
		Type:       punch.PunchType(punchType),
	}

	if err := h.timesheetService.DeletePunch(r.Context(), companyID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}

func (h *timesheetHandlerImpl) CreateAbono(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req calendar.CreateAbonoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	saved, err := h.timesheetService.CreateAbono(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Abono created", calendar.ToAbonoResponse(saved))
}

func (h *timesheetHandlerImpl) DeleteAbono(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	abonoID := chi.URLParam(r, "abonoID")

	if err := h.timesheetService.DeleteAbono(r.Context(), companyID, abonoID, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Abono deleted", nil)
}
