package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/employee"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, registration_code, admission_date,
			   demission_date, tolerance_minutes, created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.RegistrationCode, &e.AdmissionDate,
		&e.DemissionDate, &e.ToleranceMinutes, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if e.Schedule, err = r.listSchedule(ctx, e.ID); err != nil {
		return employee.Employee{}, err
	}
	if e.RateHistory, err = r.listRateHistory(ctx, e.ID); err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *employeeRepositoryImpl) listSchedule(ctx context.Context, employeeID string) ([]employee.ScheduleDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, weekday, entry_time, break_start_time,
			   break_end_time, exit_time
		FROM schedule_details
		WHERE employee_id = $1
		ORDER BY weekday
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule details: %w", err)
	}
	defer rows.Close()

	var details []employee.ScheduleDetail
	for rows.Next() {
		var d employee.ScheduleDetail
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.Weekday, &d.Entry, &d.BreakStart,
			&d.BreakEnd, &d.Exit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *employeeRepositoryImpl) listRateHistory(ctx context.Context, employeeID string) ([]employee.RateHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, effective_from, daily_rate, created_at
		FROM rate_history
		WHERE employee_id = $1
		ORDER BY effective_from ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history: %w", err)
	}
	defer rows.Close()

	var history []employee.RateHistoryEntry
	for rows.Next() {
		var e employee.RateHistoryEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.EffectiveFrom, &e.DailyRate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rate history entry: %w", err)
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

// ReplaceSchedule implements employee.EmployeeRepository. The jornada is
// replaced wholesale, never patched per weekday.
func (r *employeeRepositoryImpl) ReplaceSchedule(ctx context.Context, employeeID string, companyID string, details []employee.ScheduleDetail) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := database.ContextWithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		var exists bool
		err := q.QueryRow(txCtx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1 AND company_id = $2)`,
			employeeID, companyID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check employee: %w", err)
		}
		if !exists {
			return employee.ErrEmployeeNotFound
		}

		if _, err := q.Exec(txCtx, `DELETE FROM schedule_details WHERE employee_id = $1`, employeeID); err != nil {
			return fmt.Errorf("failed to clear schedule: %w", err)
		}

		insert := `
			INSERT INTO schedule_details (
				id, employee_id, weekday, entry_time, break_start_time,
				break_end_time, exit_time
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for _, d := range details {
			id := d.ID
			if id == "" {
				id = uuid.NewString()
			}
			if _, err := q.Exec(txCtx, insert,
				id, employeeID, d.Weekday, d.Entry, d.BreakStart, d.BreakEnd, d.Exit,
			); err != nil {
				return fmt.Errorf("failed to insert schedule detail: %w", err)
			}
		}
		return nil
	})
}

// AppendRate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AppendRate(ctx context.Context, entry employee.RateHistoryEntry) (employee.RateHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rate_history (id, employee_id, effective_from, daily_rate, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, effective_from, daily_rate, created_at
	`

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	var saved employee.RateHistoryEntry
	err := q.QueryRow(ctx, query,
		id, entry.EmployeeID, entry.EffectiveFrom, entry.DailyRate, time.Now().UTC(),
	).Scan(&saved.ID, &saved.EmployeeID, &saved.EffectiveFrom, &saved.DailyRate, &saved.CreatedAt)
	if err != nil {
		return employee.RateHistoryEntry{}, fmt.Errorf("failed to append rate history entry: %w", err)
	}
	return saved, nil
}
