package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/report"
	"github.com/dafibh/fortuna/fortuna-reports/internal/util"
	"golang.org/x/sync/errgroup"
)

// ReportService builds the by-categories spending report
type ReportService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	now             func() time.Time

	mu     sync.Mutex
	ranges map[string]monthRange
}

// monthRange is the inclusive date range queried for a month selection
type monthRange struct {
	start time.Time
	end   time.Time
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		now:             time.Now,
		ranges:          make(map[string]monthRange),
	}
}

// ByCategories computes the report for month ("YYYY-MM", empty means the current month)
func (s *ReportService) ByCategories(ctx context.Context, month string) (*domain.CategoryReport, error) {
	month = s.resolveMonth(month)
	r, err := s.dateRange(month)
	if err != nil {
		return nil, err
	}

	transactions, categories, err := s.fetch(ctx, r)
	if err != nil {
		return nil, err
	}

	totals := report.Aggregate(transactions, categories)
	_, collision := categories[domain.UncategorizedID]

	return &domain.CategoryReport{
		Month:             month,
		StartDate:         r.start,
		EndDate:           r.end,
		Total:             report.GrandTotal(totals),
		TransactionCount:  len(transactions),
		Categories:        totals,
		Chart:             report.BuildChart(totals),
		SentinelCollision: collision,
		GeneratedAt:       s.now().UTC(),
	}, nil
}

// CategoryTransactions lists the month's spending behind one drill-down entry.
// drilldownID "none" selects uncategorized transactions.
func (s *ReportService) CategoryTransactions(ctx context.Context, month, drilldownID string) ([]*domain.Transaction, error) {
	if drilldownID == "" {
		return nil, fmt.Errorf("%w: category id is required", domain.ErrInvalidInput)
	}

	month = s.resolveMonth(month)
	r, err := s.dateRange(month)
	if err != nil {
		return nil, err
	}

	transactions, categories, err := s.fetch(ctx, r)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.Transaction, 0)
	for _, t := range transactions {
		if t != nil && matchesDrilldown(t, drilldownID) {
			matches = append(matches, t)
		}
	}

	// Ids missing from the directory are still valid while the month references them
	if _, known := categories[drilldownID]; !known && drilldownID != domain.UncategorizedID && len(matches) == 0 {
		return nil, fmt.Errorf("%w: %w %q", domain.ErrNotFound, domain.ErrCategoryNotFound, drilldownID)
	}
	return matches, nil
}

// fetch loads the month's spending and the category directory concurrently
func (s *ReportService) fetch(ctx context.Context, r monthRange) ([]*domain.Transaction, map[string]*domain.Category, error) {
	var (
		transactions []*domain.Transaction
		categories   []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetSpendingByDateRange(gctx, r.start, r.end)
		if err != nil {
			return fmt.Errorf("fetch transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("fetch categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return transactions, domain.IndexCategories(categories), nil
}

// matchesDrilldown reports whether t belongs to a drill-down entry.
// "none" always selects uncategorized spending, even if a real category uses that id.
func matchesDrilldown(t *domain.Transaction, drilldownID string) bool {
	if drilldownID == domain.UncategorizedID {
		return t.IsUncategorized()
	}
	return t.CategoryID == drilldownID
}

func (s *ReportService) resolveMonth(month string) string {
	if month == "" {
		return util.MonthFromDate(s.now())
	}
	return month
}

// dateRange validates month and returns its memoized inclusive date range
func (s *ReportService) dateRange(month string) (monthRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.ranges[month]; ok {
		return r, nil
	}

	year, m, err := util.ParseMonth(month)
	if err != nil {
		return monthRange{}, err
	}
	start, end := util.MonthBoundaries(year, m)
	r := monthRange{start: start, end: end}
	s.ranges[month] = r
	return r, nil
}
