package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

const transactionColumns = `
	t.id, t.account_id, t.date, t.amount, COALESCE(t.category_id, ''), COALESCE(t.notes, ''), a.offbudget`

const getSpendingByDateRange = `
SELECT` + transactionColumns + `
FROM transactions t
JOIN accounts a ON a.id = t.account_id
WHERE t.deleted_at IS NULL
  AND t.amount < 0
  AND t.date >= ?
  AND t.date <= ?
  AND a.offbudget = 0
ORDER BY t.date, t.sort_order, t.id`

const getEarliestTransaction = `
SELECT` + transactionColumns + `
FROM transactions t
JOIN accounts a ON a.id = t.account_id
WHERE t.deleted_at IS NULL
ORDER BY t.date, t.sort_order, t.id
LIMIT 1`

// TransactionRepository implements domain.TransactionRepository on a SQLite file
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetSpendingByDateRange returns on-budget expenses dated within [startDate, endDate]
func (r *TransactionRepository) GetSpendingByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, getSpendingByDateRange, startDate.Format(dateLayout), endDate.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query spending: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spending: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spending: %w", err)
	}
	return transactions, nil
}

// GetEarliest retrieves the oldest non-deleted transaction
func (r *TransactionRepository) GetEarliest(ctx context.Context) (*domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx, getEarliestTransaction))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get earliest transaction: %w", err)
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		t    domain.Transaction
		date string
	)
	if err := row.Scan(&t.ID, &t.AccountID, &date, &t.Amount, &t.CategoryID, &t.Notes, &t.AccountOffBudget); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", date, err)
	}
	t.Date = parsed
	return &t, nil
}
