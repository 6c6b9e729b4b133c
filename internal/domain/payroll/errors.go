package payroll

import "errors"

var (
	ErrPayrollLineNotFound = errors.New("payroll line not found")
	ErrPayrollLineNotPaid  = errors.New("payroll line is not paid")
)
