package model

import (
	"context"
	"time"
)

// Level is the experience level assigned to a job by the classifier.
type Level string

const (
	LevelJunior  Level = "Junior"
	LevelMiddle  Level = "Middle"
	LevelSenior  Level = "Senior"
	LevelUnknown Level = "Unknown"
)

// Job is the unified representation of a vacancy from any source.
type Job struct {
	Fingerprint string     // stable dedup identity, same across fetches of the same vacancy
	Title       string     // job title
	Company     string     // company name
	Location    string     // location string, "Remote" when the source is remote-only
	Salary      string     // free text or formatted range, empty when not provided
	Skills      []string   // extracted skills, may be empty
	URL         string     // apply/view link
	Source      string     // adapter name that produced this job
	RawText     string     // plain-text title + description, used for classification only
	Description string     // cleaned, truncated description for display
	PostedAt    *time.Time // nullable (not all APIs provide this)
	Employment  string     // employment type as reported by the source, empty when unknown
	Level       Level      // assigned during classification
}

// SourceAdapter fetches vacancies from one provider and normalizes them into Jobs.
type SourceAdapter interface {
	Name() string
	Fetch(ctx context.Context) ([]Job, error)
}

// SeenStore tracks which job fingerprints have already been published.
type SeenStore interface {
	HasSeen(fingerprint string) (bool, error)
	// MarkSeen records a job as published. Marking an already-present
	// fingerprint is a no-op and does not refresh its timestamp.
	MarkSeen(job Job) error
	// Expire removes entries whose first-seen time predates now - window.
	Expire(window time.Duration) error
}

// Publisher renders one job and sends it to the destination channel.
type Publisher interface {
	Publish(job Job) error
}
