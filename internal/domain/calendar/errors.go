package calendar

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrAbonoNotFound   = errors.New("abono record not found")
	ErrHolidayExists   = errors.New("holiday already exists for this date")
	ErrAbonoExists     = errors.New("abono already exists for this date")
)
