// Package scheduler drives the periodic budget jobs: the daily reset, the
// monthly reset and the hourly campaign status check.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"adbudget/internal/config/configs"
	"adbudget/internal/core/port"
)

// Job names, as reported by NextRuns and in logs.
const (
	JobDailyReset   = "daily_reset"
	JobMonthlyReset = "monthly_reset"
	JobStatusCheck  = "status_check"
)

// Scheduler runs the budget jobs on cron schedules evaluated in a fixed
// location.
type Scheduler struct {
	budgets port.BudgetUseCase
	cfg     configs.Scheduler
	loc     *time.Location
	now     func() time.Time
	logger  *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID
	running bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now as the source of the status check instant.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// New creates a scheduler for the given configuration. The timezone is
// resolved immediately; the schedules are validated by Start.
func New(budgets port.BudgetUseCase, cfg configs.Scheduler, opts ...Option) (*Scheduler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	s := &Scheduler{
		budgets: budgets,
		cfg:     cfg,
		loc:     loc,
		now:     time.Now,
		logger:  slog.Default(),
		entries: make(map[string]cron.EntryID, 3),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("component", "scheduler"))
	s.cron = cron.New(cron.WithLocation(loc))
	return s, nil
}

// Start registers the three jobs and starts the cron loop. Jobs receive ctx;
// the scheduler stops itself once ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{JobDailyReset, s.cfg.DailyReset, s.RunDailyReset},
		{JobMonthlyReset, s.cfg.MonthlyReset, s.RunMonthlyReset},
		{JobStatusCheck, s.cfg.StatusCheck, s.RunStatusCheck},
	}
	for _, job := range jobs {
		if _, err := cron.ParseStandard(job.spec); err != nil {
			return fmt.Errorf("invalid cron schedule %q for %s: %w", job.spec, job.name, err)
		}
	}
	for _, job := range jobs {
		id, err := s.cron.AddFunc(job.spec, func() {
			_ = job.run(ctx)
		})
		if err != nil {
			return fmt.Errorf("schedule %s: %w", job.name, err)
		}
		s.entries[job.name] = id
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("scheduler started",
		slog.String("timezone", s.loc.String()),
		slog.String(JobDailyReset, s.cfg.DailyReset),
		slog.String(JobMonthlyReset, s.cfg.MonthlyReset),
		slog.String(JobStatusCheck, s.cfg.StatusCheck),
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop stops the scheduler and waits for any running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	for name, id := range s.entries {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
	s.running = false
	s.logger.Info("scheduler stopped")
}

// IsRunning reports whether the cron loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRuns returns the next activation of every registered job.
func (s *Scheduler) NextRuns() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]time.Time, len(s.entries))
	for name, id := range s.entries {
		out[name] = s.cron.Entry(id).Next
	}
	return out
}

// RunDailyReset resets the daily spend of every brand.
func (s *Scheduler) RunDailyReset(ctx context.Context) error {
	return s.run(JobDailyReset, func() error {
		return s.budgets.ResetDailyBudgets(ctx)
	})
}

// RunMonthlyReset resets the monthly spend of every brand.
func (s *Scheduler) RunMonthlyReset(ctx context.Context) error {
	return s.run(JobMonthlyReset, func() error {
		return s.budgets.ResetMonthlyBudgets(ctx)
	})
}

// RunStatusCheck re-evaluates every campaign at the current time in the
// scheduler's location.
func (s *Scheduler) RunStatusCheck(ctx context.Context) error {
	at := s.now().In(s.loc)
	return s.run(JobStatusCheck, func() error {
		return s.budgets.CheckCampaignStatus(ctx, at)
	})
}

func (s *Scheduler) run(name string, fn func() error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", name, r)
		}
		if err != nil {
			s.logger.Error("scheduled job failed", slog.String("job", name), slog.Any("error", err))
			return
		}
		s.logger.Info("scheduled job completed",
			slog.String("job", name),
			slog.Duration("took", time.Since(start)),
		)
	}()
	return fn()
}
