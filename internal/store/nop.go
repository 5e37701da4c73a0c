package store

import (
	"time"

	"jobpulse/internal/model"
)

// NopStore is a no-op store used in dry-run mode. It never marks jobs as seen,
// so every job appears novel on each cycle.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) HasSeen(fingerprint string) (bool, error) { return false, nil }
func (s *NopStore) MarkSeen(job model.Job) error             { return nil }
func (s *NopStore) Expire(window time.Duration) error        { return nil }
