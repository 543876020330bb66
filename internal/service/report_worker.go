package service

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/report"
	"github.com/dafibh/fortuna/fortuna-reports/internal/websocket"
	"github.com/rs/zerolog"
)

// ReportWorker is a background worker that recomputes reports for subscribed months
// and pushes them to clients when their content changes
type ReportWorker struct {
	reportService *ReportService
	publisher     websocket.EventPublisher
	logger        zerolog.Logger
	interval      time.Duration
	stopCh        chan struct{}
	doneCh        chan struct{}
	mu            sync.Mutex
	running       bool

	fpMu         sync.Mutex
	fingerprints map[string]string
}

// ReportWorkerConfig holds configuration for the report worker
type ReportWorkerConfig struct {
	Interval time.Duration // How often subscribed months are recomputed
}

// DefaultReportWorkerConfig returns sensible defaults
func DefaultReportWorkerConfig() ReportWorkerConfig {
	return ReportWorkerConfig{
		Interval: 30 * time.Second,
	}
}

// NewReportWorker creates a new report worker
func NewReportWorker(
	reportService *ReportService,
	publisher websocket.EventPublisher,
	logger zerolog.Logger,
	config ReportWorkerConfig,
) *ReportWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultReportWorkerConfig().Interval
	}

	return &ReportWorker{
		reportService: reportService,
		publisher:     publisher,
		logger:        logger.With().Str("component", "report_worker").Logger(),
		interval:      config.Interval,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
		fingerprints:  make(map[string]string),
	}
}

// Start begins the background refresh loop
func (w *ReportWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("Starting report worker")

	go w.run(ctx)
}

// Stop gracefully stops the report worker
func (w *ReportWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping report worker")
	close(w.stopCh)
	<-w.doneCh
	w.logger.Info().Msg("Report worker stopped")
}

func (w *ReportWorker) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	w.refreshAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

// refreshAll recomputes every subscribed month and forgets months nobody watches
func (w *ReportWorker) refreshAll(ctx context.Context) {
	months := w.publisher.Months()
	w.forgetExcept(months)
	if len(months) == 0 {
		return
	}

	startTime := time.Now()
	published := 0
	failed := 0

	for _, month := range months {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		default:
		}

		changed, err := w.RefreshMonth(ctx, month)
		if err != nil {
			failed++
			continue
		}
		if changed {
			published++
		}
	}

	w.logger.Debug().
		Int("months", len(months)).
		Int("published", published).
		Int("failed", failed).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed report refresh")
}

// RefreshMonth recomputes one month and publishes report.updated when its content
// changed since the last publish. Failures are published as report.error.
func (w *ReportWorker) RefreshMonth(ctx context.Context, month string) (bool, error) {
	rep, err := w.reportService.ByCategories(ctx, month)
	if err != nil {
		w.logger.Error().Err(err).Str("month", month).Msg("Failed to compute report")
		w.publisher.Publish(month, websocket.ReportError(month, "failed to compute report"))

		// republish once the report recovers
		w.fpMu.Lock()
		delete(w.fingerprints, month)
		w.fpMu.Unlock()
		return false, err
	}

	fp := report.Fingerprint(rep.Categories)

	w.fpMu.Lock()
	previous, seen := w.fingerprints[month]
	w.fingerprints[month] = fp
	w.fpMu.Unlock()

	if seen && previous == fp {
		return false, nil
	}

	w.publisher.Publish(month, websocket.ReportUpdated(report.NewView(rep)))
	w.logger.Debug().Str("month", month).Str("fingerprint", fp[:12]).Msg("Published report update")
	return true, nil
}

func (w *ReportWorker) forgetExcept(months []string) {
	keep := make(map[string]bool, len(months))
	for _, m := range months {
		keep[m] = true
	}

	w.fpMu.Lock()
	defer w.fpMu.Unlock()
	for m := range w.fingerprints {
		if !keep[m] {
			delete(w.fingerprints, m)
		}
	}
}

// IsRunning returns whether the worker is currently running
func (w *ReportWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
