package testutil

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository.
// It applies the same spending filter as the real repositories.
type MockTransactionRepository struct {
	mu           sync.Mutex
	Transactions []*domain.Transaction
	// GetSpendingErr, when set, is returned by GetSpendingByDateRange
	GetSpendingErr error
	// GetEarliestErr, when set, is returned by GetEarliest
	GetEarliestErr error
	SpendingCalls  int
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

// Add stores transactions
func (m *MockTransactionRepository) Add(transactions ...*domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transactions = append(m.Transactions, transactions...)
}

// GetSpendingByDateRange returns on-budget expenses within the inclusive date range
func (m *MockTransactionRepository) GetSpendingByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SpendingCalls++
	if m.GetSpendingErr != nil {
		return nil, m.GetSpendingErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*domain.Transaction, 0)
	for _, t := range m.Transactions {
		if t.Amount >= 0 || t.AccountOffBudget {
			continue
		}
		if t.Date.Before(startDate) || t.Date.After(endDate) {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// GetEarliest returns the transaction with the oldest date
func (m *MockTransactionRepository) GetEarliest(ctx context.Context) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetEarliestErr != nil {
		return nil, m.GetEarliestErr
	}

	var earliest *domain.Transaction
	for _, t := range m.Transactions {
		if earliest == nil || t.Date.Before(earliest.Date) {
			earliest = t
		}
	}
	if earliest == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return earliest, nil
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	mu         sync.Mutex
	Categories []*domain.Category
	GetAllErr  error
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

// Add stores categories
func (m *MockCategoryRepository) Add(categories ...*domain.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Categories = append(m.Categories, categories...)
}

// GetAll returns every stored category
func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	result := make([]*domain.Category, len(m.Categories))
	copy(result, m.Categories)
	return result, nil
}

// MockExportStore is an in-memory mock of storage.ExportStore
type MockExportStore struct {
	mu        sync.Mutex
	Objects   map[string][]byte
	Types     map[string]string
	UploadErr error
}

// NewMockExportStore creates a new MockExportStore
func NewMockExportStore() *MockExportStore {
	return &MockExportStore{
		Objects: make(map[string][]byte),
		Types:   make(map[string]string),
	}
}

// Upload stores data in memory and returns a mem:// location
func (m *MockExportStore) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, data); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[objectPath] = buf.Bytes()
	m.Types[objectPath] = contentType
	return "mem://" + objectPath, nil
}

// Delete removes an object
func (m *MockExportStore) Delete(ctx context.Context, objectPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, objectPath)
	delete(m.Types, objectPath)
	return nil
}

// Object returns a stored object and whether it exists
func (m *MockExportStore) Object(objectPath string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[objectPath]
	return data, ok
}

// Expense builds a spending transaction on an on-budget account
func Expense(id string, date time.Time, amount int64, categoryID, notes string) *domain.Transaction {
	return &domain.Transaction{
		ID:         id,
		AccountID:  "checking",
		Date:       date,
		Amount:     amount,
		CategoryID: categoryID,
		Notes:      notes,
	}
}
