// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultJobTimeout = 2 * time.Minute

// Warmer precomputes cached reports
type Warmer interface {
	Warm(ctx context.Context) error
}

// ReportWarmerConfig configures the report warm-up job
type ReportWarmerConfig struct {
	// Schedule is a standard five-field cron expression or descriptor such as "@every 10m"
	Schedule string
	// JobTimeout bounds a single run
	JobTimeout time.Duration
	// WarmOnStart runs the job once when the scheduler starts
	WarmOnStart bool
}

// ReportWarmer refreshes the report cache on a cron schedule
type ReportWarmer struct {
	config ReportWarmerConfig
	warmer Warmer
	logger *zap.Logger
	cron   *cron.Cron

	mu        sync.Mutex
	isRunning bool
	entryID   cron.EntryID
	lastRunAt *time.Time
	lastErr   error
}

// NewReportWarmer validates the schedule and builds the warmer
func NewReportWarmer(config ReportWarmerConfig, warmer Warmer, logger *zap.Logger) (*ReportWarmer, error) {
	if warmer == nil {
		return nil, fmt.Errorf("%w: warmer is required", ErrInvalidConfig)
	}
	if _, err := cron.ParseStandard(config.Schedule); err != nil {
		return nil, fmt.Errorf("%w: schedule %q: %v", ErrInvalidConfig, config.Schedule, err)
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = defaultJobTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ReportWarmer{
		config: config,
		warmer: warmer,
		logger: logger,
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger.Sugar()}),
			cron.SkipIfStillRunning(cronLogger{logger.Sugar()}),
		)),
	}, nil
}

// Start registers the job and starts the cron loop
func (w *ReportWarmer) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isRunning {
		return nil
	}

	id, err := w.cron.AddFunc(w.config.Schedule, func() { w.run(context.Background()) })
	if err != nil {
		return fmt.Errorf("failed to schedule report warm-up: %w", err)
	}
	w.entryID = id
	w.cron.Start()
	w.isRunning = true

	if w.config.WarmOnStart {
		go w.run(ctx)
	}

	w.logger.Info("Report warm-up scheduler started",
		zap.String("schedule", w.config.Schedule),
		zap.Time("next_run_at", w.cron.Entry(id).Next),
	)
	return nil
}

// Stop stops the cron loop and waits for a running job, up to the context deadline
func (w *ReportWarmer) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return nil
	}
	w.isRunning = false
	w.cron.Remove(w.entryID)
	w.mu.Unlock()

	done := w.cron.Stop()
	select {
	case <-done.Done():
		w.logger.Info("Report warm-up scheduler stopped")
		return nil
	case <-ctx.Done():
		w.logger.Warn("Report warm-up scheduler stop timed out")
		return ctx.Err()
	}
}

// TriggerManualRun runs the job immediately
func (w *ReportWarmer) TriggerManualRun(ctx context.Context) error {
	w.mu.Lock()
	running := w.isRunning
	w.mu.Unlock()
	if !running {
		return ErrSchedulerNotRunning
	}
	return w.run(ctx)
}

// GetStatus reports the scheduler state
func (w *ReportWarmer) GetStatus() map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()

	status := map[string]any{
		"running":  w.isRunning,
		"schedule": w.config.Schedule,
	}
	if w.lastRunAt != nil {
		status["last_run_at"] = *w.lastRunAt
	}
	if w.lastErr != nil {
		status["last_error"] = w.lastErr.Error()
	}
	if w.isRunning {
		status["next_run_at"] = w.cron.Entry(w.entryID).Next
	}
	return status
}

func (w *ReportWarmer) run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	start := time.Now()
	err := w.warmer.Warm(ctx)

	w.mu.Lock()
	w.lastRunAt = &start
	w.lastErr = err
	w.mu.Unlock()

	if err != nil {
		w.logger.Error("Report warm-up failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return err
	}
	w.logger.Debug("Report warm-up completed", zap.Duration("duration", time.Since(start)))
	return nil
}

// cronLogger adapts zap to the cron.Logger interface
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
