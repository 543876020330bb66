package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/util"
)

// MonthService builds the month selector shown next to the report
type MonthService struct {
	transactionRepo domain.TransactionRepository
	now             func() time.Time
}

// NewMonthService creates a new MonthService
func NewMonthService(transactionRepo domain.TransactionRepository) *MonthService {
	return &MonthService{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// AvailableMonths lists every month from the earliest recorded transaction up to the
// current month, newest first. Without any transactions only the current month is listed.
func (s *MonthService) AvailableMonths(ctx context.Context) ([]domain.MonthOption, error) {
	current := util.MonthFromDate(s.now())

	earliest := current
	t, err := s.transactionRepo.GetEarliest(ctx)
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
	case err != nil:
		return nil, fmt.Errorf("get earliest transaction: %w", err)
	default:
		earliest = util.MonthFromDate(t.Date)
	}

	// A future-dated earliest transaction still yields the current month
	if earliest > current {
		earliest = current
	}
	// Dates before the first reportable year start the selector at that year
	if floor := util.MonthKey(domain.MinReportYear, 1); earliest < floor {
		earliest = floor
	}

	keys, err := util.RangeInclusiveDesc(earliest, current)
	if err != nil {
		return nil, err
	}

	options := make([]domain.MonthOption, 0, len(keys))
	for _, key := range keys {
		pretty, err := util.FormatMonth(key)
		if err != nil {
			return nil, err
		}
		options = append(options, domain.MonthOption{Name: key, Pretty: pretty})
	}
	return options, nil
}
