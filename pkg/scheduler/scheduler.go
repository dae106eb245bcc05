package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Job is a scheduled unit of work, typically a full rescan.
type Job func(ctx context.Context) error

// Scheduler runs a job on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// New creates an idle scheduler.
func New() *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: slog.Default().With("component", "scheduler"),
	}
}

// Start schedules job under the given standard 5-field cron expression
// (e.g. "0 3 * * *" for daily at 3 AM) and starts the scheduler. An empty
// expression is a no-op. The scheduler stops itself when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context, expr string, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expr == "" {
		s.logger.Info("no schedule configured, scheduler idle")
		return nil
	}
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", expr, err)
	}

	if _, err := s.cron.AddFunc(expr, func() {
		s.runJob(ctx, job)
	}); err != nil {
		return fmt.Errorf("failed to schedule job: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("scheduler started", "schedule", expr)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runJob executes one scheduled run.
func (s *Scheduler) runJob(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}
	s.logger.Info("scheduled run started")
	if err := job(ctx); err != nil {
		s.logger.Error("scheduled run failed", "error", err)
		return
	}
	s.logger.Info("scheduled run complete")
}

// Stop halts the scheduler. Any in-flight run finishes.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
	s.logger.Info("scheduler stopped")
}
