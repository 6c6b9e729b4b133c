package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/calendar"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// ListByRange implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, date, type, name, created_at
		FROM holidays
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Date, &h.Type, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Create implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, company_id, date, type, name, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, company_id, date, type, name, created_at
	`

	id := holiday.ID
	if id == "" {
		id = uuid.NewString()
	}

	var saved calendar.Holiday
	err := q.QueryRow(ctx, query, id, holiday.CompanyID, holiday.Date, holiday.Type, holiday.Name).Scan(
		&saved.ID, &saved.CompanyID, &saved.Date, &saved.Type, &saved.Name, &saved.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return calendar.Holiday{}, calendar.ErrHolidayExists
		}
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return saved, nil
}

// Delete implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrHolidayNotFound
	}
	return nil
}

type abonoRepositoryImpl struct {
	db *database.DB
}

func NewAbonoRepository(db *database.DB) calendar.AbonoRepository {
	return &abonoRepositoryImpl{db: db}
}

// ListByRange implements calendar.AbonoRepository.
func (r *abonoRepositoryImpl) ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]calendar.AbonoRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, absence_type_id, notes, created_at
		FROM abono_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list abonos: %w", err)
	}
	defer rows.Close()

	var abonos []calendar.AbonoRecord
	for rows.Next() {
		var a calendar.AbonoRecord
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.AbsenceTypeID, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan abono: %w", err)
		}
		abonos = append(abonos, a)
	}
	return abonos, rows.Err()
}

// Create implements calendar.AbonoRepository.
func (r *abonoRepositoryImpl) Create(ctx context.Context, abono calendar.AbonoRecord) (calendar.AbonoRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO abono_records (id, employee_id, date, absence_type_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, employee_id, date, absence_type_id, notes, created_at
	`

	id := abono.ID
	if id == "" {
		id = uuid.NewString()
	}

	var saved calendar.AbonoRecord
	err := q.QueryRow(ctx, query, id, abono.EmployeeID, abono.Date, abono.AbsenceTypeID, abono.Notes).Scan(
		&saved.ID, &saved.EmployeeID, &saved.Date, &saved.AbsenceTypeID, &saved.Notes, &saved.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return calendar.AbonoRecord{}, calendar.ErrAbonoExists
		}
		return calendar.AbonoRecord{}, fmt.Errorf("failed to create abono: %w", err)
	}
	return saved, nil
}

// GetByID implements calendar.AbonoRepository.
func (r *abonoRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.AbonoRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, absence_type_id, notes, created_at
		FROM abono_records
		WHERE id = $1
	`

	var a calendar.AbonoRecord
	err := q.QueryRow(ctx, query, id).Scan(&a.ID, &a.EmployeeID, &a.Date, &a.AbsenceTypeID, &a.Notes, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return calendar.AbonoRecord{}, calendar.ErrAbonoNotFound
	}
	if err != nil {
		return calendar.AbonoRecord{}, fmt.Errorf("failed to get abono: %w", err)
	}
	return a, nil
}

// Delete implements calendar.AbonoRepository.
func (r *abonoRepositoryImpl) Delete(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM abono_records WHERE id = $1 AND employee_id = $2`, id, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete abono: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrAbonoNotFound
	}
	return nil
}
