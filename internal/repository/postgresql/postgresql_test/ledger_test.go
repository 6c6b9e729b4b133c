package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/construtec/ponto-backend-go/internal/domain/ledger"
	"github.com/construtec/ponto-backend-go/internal/domain/punch"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/construtec/ponto-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// testInit connects once per process. Repository tests need a real
// database because the conflict guard lives in the unique index.
func testInit(t *testing.T) {
	t.Helper()
	if testDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"monthly_ledger_entries", "punch_records", "abono_records", "employees"}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}

func createTestEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()
	id := uuid.NewString()
	_, err := testDB.Exec(ctx, `
		INSERT INTO employees (id, company_id, name, admission_date, tolerance_minutes, created_at, updated_at)
		VALUES ($1, $2, 'Test Employee', '2024-01-01', 5, NOW(), NOW())
	`, id, uuid.NewString())
	require.NoError(t, err)
	return id
}

func TestLedgerRepository_CreateConflict(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	employeeID := createTestEmployee(t, ctx)
	repo := postgresql.NewLedgerRepository(testDB)
	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	closedBy := "admin-1"

	entry := ledger.MonthlyLedgerEntry{
		EmployeeID:   employeeID,
		Month:        month,
		Status:       ledger.StatusClosed,
		SaldoMinutos: -120,
		ClosedBy:     &closedBy,
		ClosedAt:     time.Now().UTC(),
	}

	first, err := repo.Create(ctx, entry)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	// The unique index on (employee_id, month) must reject the second insert.
	_, err = repo.Create(ctx, entry)
	assert.ErrorIs(t, err, ledger.ErrLedgerConflict)

	// Reopening deletes the row; the month reads back as open.
	require.NoError(t, repo.Delete(ctx, first.ID))
	got, err := repo.GetByEmployeeAndMonth(ctx, employeeID, month)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPunchRepository_UpsertOverwrites(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	employeeID := createTestEmployee(t, ctx)
	repo := postgresql.NewPunchRepository(testDB)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, punch.PunchRecord{
		EmployeeID: employeeID,
		Date:       date,
		Type:       punch.TypeEntrada,
		ClockTime:  "08:03",
	})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, punch.PunchRecord{
		EmployeeID: employeeID,
		Date:       date,
		Type:       punch.TypeEntrada,
		ClockTime:  "08:00",
		ManualEdit: true,
		Audit:      &punch.EditAudit{EditedBy: "admin-1", EditedAt: time.Now().UTC()},
	})
	require.NoError(t, err)

	// Same (employee, date, type) row, overwritten in place.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "08:00", second.ClockTime)
	assert.True(t, second.ManualEdit)

	records, err := repo.ListByRange(ctx, employeeID, date, date)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
