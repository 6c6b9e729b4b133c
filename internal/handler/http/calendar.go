package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	domain "github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/handler/http/response"
	"github.com/construtec/ponto-backend-go/internal/service/calendar"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

func (h *calendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1900 || year > 2200 {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	holidays, err := h.calendarService.ListHolidays(r.Context(), companyID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, domain.ToHolidayResponses(holidays))
}

func (h *calendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req domain.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	saved, err := h.calendarService.CreateHoliday(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", domain.ToHolidayResponse(saved))
}

func (h *calendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := requestScope(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	if err := h.calendarService.DeleteHoliday(r.Context(), companyID, chi.URLParam(r, "holidayID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
