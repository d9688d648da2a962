package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"SentimentPulse/internal/report"
)

// Scheduler runs the report on a cron schedule (daemon mode).
type Scheduler struct {
	Cron   *cron.Cron
	Runner *report.Runner
	Log    *zap.SugaredLogger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(runner *report.Runner, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: runner,
		Log:    log,
	}
}

// Register adds the daily report task on the given cron expression
// (with a seconds field).
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.task); err != nil {
		return fmt.Errorf("register daily report: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info("scheduler stopped")
}

func (s *Scheduler) task() {
	s.Log.Info("running scheduled report")
	if err := s.Runner.Run(); err != nil {
		s.Log.Errorw("scheduled report failed", "error", err)
	}
}
