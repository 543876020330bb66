package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	t.id, t.account_id, t.date, t.amount, t.category_id, t.notes, a.offbudget`

const getSpendingByDateRange = `
SELECT` + transactionColumns + `
FROM transactions t
JOIN accounts a ON a.id = t.account_id
WHERE t.deleted_at IS NULL
  AND t.amount < 0
  AND t.date >= $1
  AND t.date <= $2
  AND a.offbudget = FALSE
ORDER BY t.date, t.sort_order, t.id`

const getEarliestTransaction = `
SELECT` + transactionColumns + `
FROM transactions t
JOIN accounts a ON a.id = t.account_id
WHERE t.deleted_at IS NULL
ORDER BY t.date, t.sort_order, t.id
LIMIT 1`

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// GetSpendingByDateRange returns on-budget expenses dated within [startDate, endDate]
func (r *TransactionRepository) GetSpendingByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, getSpendingByDateRange, timeToPgDate(startDate), timeToPgDate(endDate))
	if err != nil {
		return nil, fmt.Errorf("query spending: %w", err)
	}
	transactions, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("scan spending: %w", err)
	}
	return transactions, nil
}

// GetEarliest retrieves the oldest non-deleted transaction
func (r *TransactionRepository) GetEarliest(ctx context.Context) (*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, getEarliestTransaction)
	if err != nil {
		return nil, fmt.Errorf("query earliest transaction: %w", err)
	}
	transaction, err := pgx.CollectOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("scan earliest transaction: %w", err)
	}
	return transaction, nil
}

// Helper functions

func scanTransaction(row pgx.CollectableRow) (*domain.Transaction, error) {
	var (
		t          domain.Transaction
		date       pgtype.Date
		categoryID pgtype.Text
		notes      pgtype.Text
	)
	if err := row.Scan(&t.ID, &t.AccountID, &date, &t.Amount, &categoryID, &notes, &t.AccountOffBudget); err != nil {
		return nil, err
	}
	t.Date = pgDateToTime(date)
	t.CategoryID = pgTextToString(categoryID)
	t.Notes = pgTextToString(notes)
	return &t, nil
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  t,
		Valid: true,
	}
}

func pgDateToTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

func pgTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
