package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/payroll"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollLineRepositoryImpl struct {
	db *database.DB
}

func NewPayrollLineRepository(db *database.DB) payroll.PayrollLineRepository {
	return &payrollLineRepositoryImpl{db: db}
}

// GetByEmployeeAndMonth implements payroll.PayrollLineRepository.
func (r *payrollLineRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID, companyID string, month time.Time) (payroll.PayrollLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, month, amount, status, paid_at,
			   notes, created_at, updated_at
		FROM payroll_lines
		WHERE employee_id = $1 AND company_id = $2 AND month = $3
	`

	var l payroll.PayrollLine
	err := q.QueryRow(ctx, query, employeeID, companyID, month).Scan(
		&l.ID, &l.EmployeeID, &l.CompanyID, &l.Month, &l.Amount, &l.Status,
		&l.PaidAt, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.PayrollLine{}, payroll.ErrPayrollLineNotFound
	}
	if err != nil {
		return payroll.PayrollLine{}, fmt.Errorf("failed to get payroll line: %w", err)
	}
	return l, nil
}

// MarkPaid implements payroll.PayrollLineRepository.
func (r *payrollLineRepositoryImpl) MarkPaid(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_lines
		SET amount = $2, status = $3, paid_at = $4, updated_at = NOW()
		WHERE id = $1
	`, id, amount, payroll.LineStatusPaid, paidAt)
	if err != nil {
		return fmt.Errorf("failed to mark payroll line paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollLineNotFound
	}
	return nil
}

// Revert implements payroll.PayrollLineRepository.
func (r *payrollLineRepositoryImpl) Revert(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_lines
		SET status = $2, paid_at = NULL, updated_at = NOW()
		WHERE id = $1
	`, id, payroll.LineStatusProvisioned)
	if err != nil {
		return fmt.Errorf("failed to revert payroll line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollLineNotFound
	}
	return nil
}
