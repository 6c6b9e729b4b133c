package calendar

import (
	"context"
	"time"
)

// HolidayRepository defines data access for the organization holiday calendar.
type HolidayRepository interface {
	ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
}

// AbonoRepository defines data access for excused-absence records.
type AbonoRepository interface {
	ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]AbonoRecord, error)
	Create(ctx context.Context, abono AbonoRecord) (AbonoRecord, error)
	Delete(ctx context.Context, id string, employeeID string) error
	GetByID(ctx context.Context, id string) (AbonoRecord, error)
}
