// Package scheduler wires up the cron job that periodically runs an
// ingestion cycle.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"jobpulse/internal/pipeline"
)

// Scheduler wraps robfig/cron around the pipeline coordinator. The cron chain
// skips ticks that fire while a cycle is still running, so cycles never
// overlap or queue up.
type Scheduler struct {
	cron        *cron.Cron
	coordinator *pipeline.Coordinator
	spec        string // cron spec, e.g. "@every 30m"
	logger      *slog.Logger
}

// New creates a Scheduler that fires a cycle every interval.
func New(coordinator *pipeline.Coordinator, interval time.Duration, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slogPrintf{logger})
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
		),
		coordinator: coordinator,
		spec:        fmt.Sprintf("@every %s", interval),
		logger:      logger,
	}
}

// Run registers the cycle job, runs one cycle immediately, and blocks until
// ctx is cancelled. The in-flight cycle is allowed to finish before Run
// returns.
func (s *Scheduler) Run(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", s.spec)

	// First cycle right away so the channel is populated without waiting
	// for the first tick.
	s.runCycle(ctx)

	<-ctx.Done()

	s.logger.Info("scheduler stopping")
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	report, err := s.coordinator.RunCycle(ctx)
	switch {
	case errors.Is(err, pipeline.ErrCycleInProgress):
		s.logger.Warn("cycle still running, tick skipped")
	case err != nil:
		s.logger.Error("cycle failed", "error", err)
	default:
		s.logger.Info("cycle finished", "published", report.Published, "errors", len(report.Errors))
	}
}

// slogPrintf adapts slog to the Printf interface cron's loggers expect.
type slogPrintf struct {
	logger *slog.Logger
}

func (l slogPrintf) Printf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
