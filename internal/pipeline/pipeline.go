package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"jobpulse/internal/classify"
	"jobpulse/internal/model"
	"jobpulse/internal/ratelimit"
)

// ErrCycleInProgress is returned when RunCycle is entered while a previous
// cycle is still running. The caller should skip the tick, not queue it.
var ErrCycleInProgress = errors.New("cycle already in progress")

// Report summarizes one cycle for observability.
type Report struct {
	Fetched   int // records returned by all sources
	Relevant  int // survived classification and level policy
	Novel     int // not found in the seen store
	Published int // successfully handed to the publisher
	Errors    []error
}

// Params wires a Coordinator. Zero values get sensible defaults.
type Params struct {
	Adapters      []model.SourceAdapter
	Classifier    *classify.Classifier
	Store         model.SeenStore
	Publisher     model.Publisher
	Pacer         *ratelimit.Pacer
	MaxPosts      int                  // per-cycle publish cap, default 15
	Retention     time.Duration        // dedup retention window, default 7 days
	FetchTimeout  time.Duration        // per-source fetch deadline, default 2 minutes
	RequireRemote bool                 // drop listings without a remote-work signal
	PublishLevels map[model.Level]bool // which levels get published
	Logger        *slog.Logger
}

// Coordinator owns one ingestion cycle: expire → fetch → classify → dedup →
// cap → publish. Cycles are strictly serialized; all store access happens from
// the single running cycle.
type Coordinator struct {
	adapters      []model.SourceAdapter
	classifier    *classify.Classifier
	store         model.SeenStore
	publisher     model.Publisher
	pacer         *ratelimit.Pacer
	maxPosts      int
	retention     time.Duration
	fetchTimeout  time.Duration
	requireRemote bool
	publishLevels map[model.Level]bool
	logger        *slog.Logger

	running atomic.Bool
}

// New creates a Coordinator from Params.
func New(p Params) *Coordinator {
	if p.MaxPosts <= 0 {
		p.MaxPosts = 15
	}
	if p.Retention <= 0 {
		p.Retention = 7 * 24 * time.Hour
	}
	if p.FetchTimeout <= 0 {
		p.FetchTimeout = 2 * time.Minute
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	if p.PublishLevels == nil {
		p.PublishLevels = map[model.Level]bool{
			model.LevelJunior:  true,
			model.LevelMiddle:  true,
			model.LevelUnknown: true,
		}
	}
	return &Coordinator{
		adapters:      p.Adapters,
		classifier:    p.Classifier,
		store:         p.Store,
		publisher:     p.Publisher,
		pacer:         p.Pacer,
		maxPosts:      p.MaxPosts,
		retention:     p.Retention,
		fetchTimeout:  p.FetchTimeout,
		requireRemote: p.RequireRemote,
		publishLevels: p.PublishLevels,
		logger:        p.Logger,
	}
}

// RunCycle executes one full cycle and returns its report. A cycle that is
// already running causes ErrCycleInProgress; overlapping ticks are dropped.
func (c *Coordinator) RunCycle(ctx context.Context) (Report, error) {
	if !c.running.CompareAndSwap(false, true) {
		return Report{}, ErrCycleInProgress
	}
	defer c.running.Store(false)

	var report Report

	// Expire first so a just-expired fingerprint can repost this same cycle.
	// Expiry is advisory cleanup; a failure degrades, it does not abort.
	if err := c.store.Expire(c.retention); err != nil {
		c.logger.Warn("store expiry failed", "error", err)
		report.Errors = append(report.Errors, err)
	}

	records := c.fetchAll(ctx, &report)
	report.Fetched = len(records)

	relevant := c.classifyAll(records)
	report.Relevant = len(relevant)

	novel := c.filterNovel(relevant, &report)
	report.Novel = len(novel)

	// Cap deterministically: records keep their first-appearance order
	// (config source order, then response order), so the same input always
	// selects the same subset.
	if len(novel) > c.maxPosts {
		novel = novel[:c.maxPosts]
	}

	c.publishAll(novel, &report)

	c.logger.Info("cycle complete",
		"fetched", report.Fetched,
		"relevant", report.Relevant,
		"novel", report.Novel,
		"published", report.Published,
		"errors", len(report.Errors),
	)

	return report, nil
}

// fetchAll polls each source sequentially with paced gaps. A failing source is
// recorded and skipped; it never blocks the others.
func (c *Coordinator) fetchAll(ctx context.Context, report *Report) []model.Job {
	var records []model.Job
	for _, adapter := range c.adapters {
		if ctx.Err() != nil {
			report.Errors = append(report.Errors, ctx.Err())
			return records
		}
		if c.pacer != nil {
			if err := c.pacer.Wait(ctx); err != nil {
				report.Errors = append(report.Errors, err)
				return records
			}
		}

		fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
		jobs, err := adapter.Fetch(fetchCtx)
		cancel()
		if err != nil {
			c.logger.Error("source fetch failed, skipping this cycle",
				"source", adapter.Name(),
				"error", err,
			)
			report.Errors = append(report.Errors, fmt.Errorf("%s: %w", adapter.Name(), err))
			continue
		}

		c.logger.Debug("fetched source", "source", adapter.Name(), "jobs", len(jobs))
		records = append(records, jobs...)
	}
	return records
}

// classifyAll scores records and keeps those that are IT-relevant, pass the
// remote-work policy, and have a publishable level.
func (c *Coordinator) classifyAll(records []model.Job) []model.Job {
	var relevant []model.Job
	for _, job := range records {
		verdict := c.classifier.Classify(job)
		if !verdict.Relevant {
			continue
		}
		if c.requireRemote && !verdict.Remote {
			continue
		}
		if !c.publishLevels[verdict.Level] {
			continue
		}
		job.Level = verdict.Level
		relevant = append(relevant, job)
	}
	return relevant
}

// filterNovel drops records the store has already seen. A store read error
// degrades to "not seen": a possible repost is preferred over silently losing
// a new listing.
func (c *Coordinator) filterNovel(records []model.Job, report *Report) []model.Job {
	var novel []model.Job
	for _, job := range records {
		seen, err := c.store.HasSeen(job.Fingerprint)
		if err != nil {
			c.logger.Warn("dedup check failed, treating record as novel",
				"fingerprint", job.Fingerprint,
				"error", err,
			)
			report.Errors = append(report.Errors, err)
			seen = false
		}
		if !seen {
			novel = append(novel, job)
		}
	}
	return novel
}

// publishAll hands each record to the publisher and marks it seen only after
// a successful post. A retryable failure leaves the record unmarked so the
// next cycle retries it; a permanent failure marks it so it is not retried
// forever. One failed publish never aborts the rest of the batch.
func (c *Coordinator) publishAll(records []model.Job, report *Report) {
	for _, job := range records {
		if err := c.publisher.Publish(job); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("publish %s: %w", job.Fingerprint, err))

			var pubErr *model.PublishError
			if errors.As(err, &pubErr) && !pubErr.Retryable {
				c.logger.Error("permanent publish failure, dropping record",
					"fingerprint", job.Fingerprint,
					"title", job.Title,
					"error", err,
				)
				if markErr := c.store.MarkSeen(job); markErr != nil {
					c.logger.Error("failed to mark dropped record", "fingerprint", job.Fingerprint, "error", markErr)
				}
			} else {
				c.logger.Error("publish failed, record kept for next cycle",
					"fingerprint", job.Fingerprint,
					"title", job.Title,
					"error", err,
				)
			}
			continue
		}

		report.Published++

		// Mark strictly after a successful post. A failure here is loud:
		// an unmarked published job reposts on every following cycle.
		if err := c.store.MarkSeen(job); err != nil {
			c.logger.Error("failed to mark published record as seen",
				"fingerprint", job.Fingerprint,
				"error", err,
			)
			report.Errors = append(report.Errors, err)
		}
	}
}
