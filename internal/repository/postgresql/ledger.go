package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/ledger"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

// GetByEmployeeAndMonth implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*ledger.MonthlyLedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, status, saldo_minutos, closed_by,
			   closed_at, created_at, updated_at
		FROM monthly_ledger_entries
		WHERE employee_id = $1 AND month = $2
	`

	var e ledger.MonthlyLedgerEntry
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&e.ID, &e.EmployeeID, &e.Month, &e.Status, &e.SaldoMinutos,
		&e.ClosedBy, &e.ClosedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly ledger entry: %w", err)
	}
	return &e, nil
}

// Create implements ledger.LedgerRepository. The unique index on
// (employee_id, month) backs the conflict guard: of two concurrent closes
// exactly one insert succeeds.
func (r *ledgerRepositoryImpl) Create(ctx context.Context, entry ledger.MonthlyLedgerEntry) (ledger.MonthlyLedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_ledger_entries (
			id, employee_id, month, status, saldo_minutos, closed_by,
			closed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, employee_id, month, status, saldo_minutos, closed_by,
				  closed_at, created_at, updated_at
	`

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	var saved ledger.MonthlyLedgerEntry
	err := q.QueryRow(ctx, query,
		id, entry.EmployeeID, entry.Month, entry.Status, entry.SaldoMinutos,
		entry.ClosedBy, entry.ClosedAt,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.Month, &saved.Status, &saved.SaldoMinutos,
		&saved.ClosedBy, &saved.ClosedAt, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.MonthlyLedgerEntry{}, ledger.ErrLedgerConflict
		}
		return ledger.MonthlyLedgerEntry{}, fmt.Errorf("failed to create monthly ledger entry: %w", err)
	}
	return saved, nil
}

// Delete implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM monthly_ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete monthly ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrNotClosed
	}
	return nil
}
