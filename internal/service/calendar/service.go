package calendar

import (
	"context"
	"fmt"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

// CalendarService maintains the organization holiday calendar.
type CalendarService interface {
	ListHolidays(ctx context.Context, companyID string, year int) ([]calendar.Holiday, error)
	CreateHoliday(ctx context.Context, companyID string, req calendar.CreateHolidayRequest) (calendar.Holiday, error)
	DeleteHoliday(ctx context.Context, companyID string, id string) error
}

type CalendarServiceImpl struct {
	holidayRepo calendar.HolidayRepository
}

func NewCalendarService(holidayRepo calendar.HolidayRepository) CalendarService {
	return &CalendarServiceImpl{holidayRepo: holidayRepo}
}

// ListHolidays implements CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, companyID string, year int) ([]calendar.Holiday, error) {
	from, err := timefmt.ParseDate(fmt.Sprintf("%04d-01-01", year))
	if err != nil {
		return nil, fmt.Errorf("invalid year: %w", err)
	}
	to := from.AddDate(1, 0, -1)

	holidays, err := s.holidayRepo.ListByRange(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

// CreateHoliday implements CalendarService.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, companyID string, req calendar.CreateHolidayRequest) (calendar.Holiday, error) {
	if err := req.Validate(); err != nil {
		return calendar.Holiday{}, err
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return calendar.Holiday{}, fmt.Errorf("invalid date: %w", err)
	}

	holiday := calendar.Holiday{
		CompanyID: companyID,
		Date:      timefmt.DayStart(date),
		Type:      calendar.HolidayType(req.Type),
		Name:      req.Name,
	}

	saved, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return saved, nil
}

// DeleteHoliday implements CalendarService.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, companyID string, id string) error {
	if err := s.holidayRepo.Delete(ctx, id, companyID); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
