package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMonthService(now time.Time) (*MonthService, *testutil.MockTransactionRepository) {
	transactionRepo := testutil.NewMockTransactionRepository()
	svc := NewMonthService(transactionRepo)
	svc.now = fixedClock(now)
	return svc, transactionRepo
}

func TestMonthService_AvailableMonths(t *testing.T) {
	svc, transactionRepo := setupMonthService(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	transactionRepo.Add(
		testutil.Expense("t1", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), -100, "", ""),
		testutil.Expense("t2", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 5000, "", ""),
	)

	months, err := svc.AvailableMonths(context.Background())
	require.NoError(t, err)

	expected := []domain.MonthOption{
		{Name: "2024-03", Pretty: "March, 2024"},
		{Name: "2024-02", Pretty: "February, 2024"},
		{Name: "2024-01", Pretty: "January, 2024"},
		{Name: "2023-12", Pretty: "December, 2023"},
	}
	assert.Equal(t, expected, months)
}

func TestMonthService_AvailableMonths_NoTransactions(t *testing.T) {
	svc, _ := setupMonthService(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	months, err := svc.AvailableMonths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MonthOption{{Name: "2024-03", Pretty: "March, 2024"}}, months)
}

func TestMonthService_AvailableMonths_FutureEarliest(t *testing.T) {
	svc, transactionRepo := setupMonthService(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	transactionRepo.Add(testutil.Expense("t1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), -100, "", ""))

	months, err := svc.AvailableMonths(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 1)
	assert.Equal(t, "2024-03", months[0].Name)
}

func TestMonthService_AvailableMonths_RepositoryError(t *testing.T) {
	svc, transactionRepo := setupMonthService(time.Now())
	dbErr := errors.New("timeout")
	transactionRepo.GetEarliestErr = dbErr

	_, err := svc.AvailableMonths(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestMonthService_AvailableMonths_AncientEarliest(t *testing.T) {
	svc, transactionRepo := setupMonthService(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	transactionRepo.Add(testutil.Expense("t1", time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC), -100, "", ""))

	months, err := svc.AvailableMonths(context.Background())
	require.NoError(t, err)

	// 1900-01 through 2024-03
	require.Len(t, months, 124*12+3)
	assert.Equal(t, "2024-03", months[0].Name)
	assert.Equal(t, domain.MonthOption{Name: "1900-01", Pretty: "January, 1900"}, months[len(months)-1])
}
