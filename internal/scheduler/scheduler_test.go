package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"jobpulse/internal/classify"
	"jobpulse/internal/model"
	"jobpulse/internal/pipeline"
)

type fixedAdapter struct{ jobs []model.Job }

func (a *fixedAdapter) Name() string { return "fixed" }

func (a *fixedAdapter) Fetch(ctx context.Context) ([]model.Job, error) {
	return a.jobs, nil
}

type countingStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (s *countingStore) HasSeen(fp string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[fp], nil
}

func (s *countingStore) MarkSeen(job model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[job.Fingerprint] = true
	return nil
}

func (s *countingStore) Expire(window time.Duration) error { return nil }

type countingPublisher struct {
	mu    sync.Mutex
	count int
}

func (p *countingPublisher) Publish(job model.Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	return nil
}

func TestRunExecutesImmediateCycleAndStopsOnCancel(t *testing.T) {
	store := &countingStore{seen: map[string]bool{}}
	pub := &countingPublisher{}
	coordinator := pipeline.New(pipeline.Params{
		Adapters: []model.SourceAdapter{&fixedAdapter{jobs: []model.Job{{
			Fingerprint: "fixed:1",
			Title:       "Junior Go Developer",
			RawText:     "junior go developer remote",
		}}}},
		Classifier: classify.New(classify.DefaultSignals()),
		Store:      store,
		Publisher:  pub,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s := New(coordinator, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// The first cycle runs on startup, well before the first hourly tick.
	deadline := time.After(2 * time.Second)
	for {
		pub.mu.Lock()
		published := pub.count
		pub.mu.Unlock()
		if published == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("startup cycle did not publish within 2s")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
