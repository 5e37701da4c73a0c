package publish

import (
	"log/slog"

	"jobpulse/internal/model"
)

// Ensure LogPublisher implements model.Publisher.
var _ model.Publisher = (*LogPublisher)(nil)

// LogPublisher writes jobs to the logger instead of a channel. Used by the
// check command and when no Telegram credentials are configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a publisher that logs each job via slog.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the job. Returns nil (stdout logging does not fail).
func (p *LogPublisher) Publish(job model.Job) error {
	args := []any{
		"title", job.Title,
		"company", job.Company,
		"location", job.Location,
		"level", job.Level,
		"url", job.URL,
		"source", job.Source,
	}
	if job.Salary != "" {
		args = append(args, "salary", job.Salary)
	}
	p.logger.Info("would publish job", args...)
	return nil
}
