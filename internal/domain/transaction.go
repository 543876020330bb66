package domain

import (
	"context"
	"time"
)

// Transaction is a single ledger entry as seen by the reports.
// Amount is in minor currency units; expenses are negative.
type Transaction struct {
	ID               string    `json:"id"`
	AccountID        string    `json:"accountId"`
	Date             time.Time `json:"date"`
	Amount           int64     `json:"amount"`
	CategoryID       string    `json:"categoryId,omitempty"`
	Notes            string    `json:"notes"`
	AccountOffBudget bool      `json:"accountOffBudget"`
}

// IsUncategorized reports whether the transaction has no category assigned
func (t *Transaction) IsUncategorized() bool {
	return t.CategoryID == ""
}

// TransactionRepository is the transaction query collaborator used by the reports
type TransactionRepository interface {
	// GetSpendingByDateRange returns transactions with a negative amount, dated within
	// [startDate, endDate] inclusive, that belong to an on-budget account.
	GetSpendingByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*Transaction, error)
	// GetEarliest returns the oldest transaction or ErrTransactionNotFound.
	GetEarliest(ctx context.Context) (*Transaction, error)
}
