package http

import (
	"encoding/json"
	"net/http"

	domain "github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/handler/http/response"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
	"github.com/construtec/ponto-backend-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	GetSchedule(w http.ResponseWriter, r *http.Request)
	GetDaySchedule(w http.ResponseWriter, r *http.Request)
	ReplaceSchedule(w http.ResponseWriter, r *http.Request)
	AppendRate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	details, err := h.employeeService.GetSchedule(r.Context(), chi.URLParam(r, "employeeID"), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, domain.ToScheduleResponse(details))
}

// GetDaySchedule returns the expected times for ?date=yyyy-mm-dd.
func (h *employeeHandlerImpl) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
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

	resolved, err := h.employeeService.ResolveDay(r.Context(), chi.URLParam(r, "employeeID"), companyID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resolved)
}

func (h *employeeHandlerImpl) ReplaceSchedule(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req domain.ReplaceScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.employeeService.ReplaceSchedule(r.Context(), chi.URLParam(r, "employeeID"), companyID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule replaced", nil)
}

func (h *employeeHandlerImpl) AppendRate(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req domain.AppendRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	saved, err := h.employeeService.AppendRate(r.Context(), chi.URLParam(r, "employeeID"), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rate appended", domain.ToRateResponse(saved))
}
