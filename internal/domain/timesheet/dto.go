package timesheet

import (
	"github.com/construtec/ponto-backend-go/internal/pkg/timefmt"
)

type DayBalanceResponse struct {
	Date            string  `json:"date"`
	WorkedMinutes   int     `json:"worked_minutes"`
	ExpectedMinutes int     `json:"expected_minutes"`
	BalanceMinutes  int     `json:"balance_minutes"`
	Balance         string  `json:"balance"` // signed ±HH:MM
	Pending         bool    `json:"pending"`
	Weekend         bool    `json:"weekend"`
	Holiday         *string `json:"holiday,omitempty"`
	Abono           bool    `json:"abono"`
}

type MonthlyLedgerResponse struct {
	EmployeeID   string               `json:"employee_id"`
	Month        string               `json:"month"` // yyyy-mm
	Days         []DayBalanceResponse `json:"days"`
	TotalMinutes int                  `json:"total_minutes"`
	Total        string               `json:"total"` // signed ±HH:MM
	PendingDates []string             `json:"pending_dates"`
}

func ToDayResponse(d DayBalance) DayBalanceResponse {
	resp := DayBalanceResponse{
		Date:            timefmt.DateKey(d.Date),
		WorkedMinutes:   d.WorkedMinutes,
		ExpectedMinutes: d.ExpectedMinutes,
		BalanceMinutes:  d.BalanceMinutes,
		Balance:         timefmt.FormatSigned(d.BalanceMinutes),
		Pending:         d.Pending,
		Weekend:         d.Weekend,
		Abono:           d.Abono,
	}
	if d.Holiday != nil {
		s := string(*d.Holiday)
		resp.Holiday = &s
	}
	return resp
}

func ToLedgerResponse(m MonthlyLedger) MonthlyLedgerResponse {
	days := make([]DayBalanceResponse, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, ToDayResponse(d))
	}

	pending := make([]string, 0, len(m.PendingDates))
	for _, d := range m.PendingDates {
		pending = append(pending, timefmt.DateKey(d))
	}

	return MonthlyLedgerResponse{
		EmployeeID:   m.EmployeeID,
		Month:        m.Month.Format("2006-01"),
		Days:         days,
		TotalMinutes: m.TotalMinutes,
		Total:        timefmt.FormatSigned(m.TotalMinutes),
		PendingDates: pending,
	}
}
