package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "budget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seed(t *testing.T, db *sql.DB, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
}

func seedBudget(t *testing.T, db *sql.DB) {
	seed(t, db,
		`INSERT INTO accounts (id, name, offbudget) VALUES ('checking', 'Checking', 0), ('savings', 'Savings', 1)`,
		`INSERT INTO category_groups (id, name, sort_order) VALUES ('g1', 'Usual Expenses', 1), ('g2', 'Bills', 2)`,
		`INSERT INTO categories (id, name, group_id, sort_order) VALUES
			('food', 'Food', 'g1', 1),
			('rent', 'Rent', 'g2', 1),
			('gas', 'Gas', 'g1', 2)`,
		`INSERT INTO categories (id, name, group_id, deleted_at) VALUES ('old', 'Old', 'g1', CURRENT_TIMESTAMP)`,
		`INSERT INTO transactions (id, account_id, date, amount, category_id, notes, sort_order) VALUES
			('t1', 'checking', '2024-03-01', -1250, 'food', 'groceries', 1),
			('t2', 'checking', '2024-03-31', -90000, 'rent', NULL, 1),
			('t3', 'checking', '2024-03-15', 500000, NULL, 'salary', 1),
			('t4', 'savings', '2024-03-10', -2000, 'food', 'transfer', 1),
			('t5', 'checking', '2024-04-01', -700, 'gas', NULL, 1),
			('t6', 'checking', '2024-02-29', -300, NULL, 'coffee', 1),
			('t7', 'checking', '2024-03-20', -450, NULL, NULL, 2)`,
		`INSERT INTO transactions (id, account_id, date, amount, deleted_at) VALUES ('t8', 'checking', '2020-01-01', -100, CURRENT_TIMESTAMP)`,
	)
}

func TestTransactionRepository_GetSpendingByDateRange(t *testing.T) {
	db := openTestDB(t)
	seedBudget(t, db)
	repo := NewTransactionRepository(db)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	transactions, err := repo.GetSpendingByDateRange(context.Background(), start, end)
	require.NoError(t, err)

	ids := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		ids = append(ids, tx.ID)
	}
	// income, off-budget, out-of-range and deleted rows are excluded
	assert.Equal(t, []string{"t1", "t7", "t2"}, ids)

	assert.Equal(t, "food", transactions[0].CategoryID)
	assert.Equal(t, "groceries", transactions[0].Notes)
	assert.Equal(t, int64(-1250), transactions[0].Amount)
	assert.True(t, transactions[0].Date.Equal(start))
	assert.True(t, transactions[1].IsUncategorized())
	assert.Empty(t, transactions[1].Notes)
	assert.False(t, transactions[2].AccountOffBudget)
}

func TestTransactionRepository_GetSpendingByDateRange_Empty(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)

	transactions, err := repo.GetSpendingByDateRange(context.Background(),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestTransactionRepository_GetEarliest(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)

	_, err := repo.GetEarliest(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	seedBudget(t, db)
	earliest, err := repo.GetEarliest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t6", earliest.ID)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), earliest.Date)
}

func TestCategoryRepository_GetAll(t *testing.T) {
	db := openTestDB(t)
	seedBudget(t, db)
	repo := NewCategoryRepository(db)

	categories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "food", categories[0].ID)
	assert.Equal(t, "Usual Expenses", categories[0].GroupName)
	assert.Equal(t, "gas", categories[1].ID)
	assert.Equal(t, "rent", categories[2].ID)
	assert.Equal(t, "Bills", categories[2].GroupName)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&count))
	assert.Equal(t, 0, count)
}
