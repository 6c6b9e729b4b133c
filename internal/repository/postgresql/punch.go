package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListByRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]punch.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, type, clock_time, manual_edit,
			   edited_by, edited_at, created_at, updated_at
		FROM punch_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, type
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch records: %w", err)
	}
	defer rows.Close()

	var records []punch.PunchRecord
	for rows.Next() {
		var p punch.PunchRecord
		var editedBy *string
		var editedAt *time.Time
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date, &p.Type, &p.ClockTime, &p.ManualEdit,
			&editedBy, &editedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch record: %w", err)
		}
		if editedBy != nil && editedAt != nil {
			p.Audit = &punch.EditAudit{EditedBy: *editedBy, EditedAt: *editedAt}
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// Upsert implements punch.PunchRepository. The unique index on
// (employee_id, date, type) makes later edits overwrite, never duplicate.
func (r *punchRepositoryImpl) Upsert(ctx context.Context, record punch.PunchRecord) (punch.PunchRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_records (
			id, employee_id, date, type, clock_time, manual_edit,
			edited_by, edited_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (employee_id, date, type) DO UPDATE SET
			clock_time = EXCLUDED.clock_time,
			manual_edit = EXCLUDED.manual_edit,
			edited_by = EXCLUDED.edited_by,
			edited_at = EXCLUDED.edited_at,
			updated_at = NOW()
		RETURNING id, employee_id, date, type, clock_time, manual_edit,
				  edited_by, edited_at, created_at, updated_at
	`

	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}

	var editedBy *string
	var editedAt *time.Time
	if record.Audit != nil {
		editedBy = &record.Audit.EditedBy
		editedAt = &record.Audit.EditedAt
	}

	var saved punch.PunchRecord
	var savedBy *string
	var savedAt *time.Time
	err := q.QueryRow(ctx, query,
		id, record.EmployeeID, record.Date, record.Type, record.ClockTime,
		record.ManualEdit, editedBy, editedAt,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.Date, &saved.Type, &saved.ClockTime,
		&saved.ManualEdit, &savedBy, &savedAt, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return punch.PunchRecord{}, fmt.Errorf("failed to upsert punch record: %w", err)
	}
	if savedBy != nil && savedAt != nil {
		saved.Audit = &punch.EditAudit{EditedBy: *savedBy, EditedAt: *savedAt}
	}
	return saved, nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, employeeID string, date time.Time, punchType punch.PunchType) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM punch_records WHERE employee_id = $1 AND date = $2 AND type = $3`,
		employeeID, date, punchType,
	)
	if err != nil {
		return fmt.Errorf("failed to delete punch record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}
	return nil
}
