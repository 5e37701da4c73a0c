package ratelimit

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Pacer enforces a minimum gap, plus random jitter, between consecutive
// outbound fetches. Source adapters are called sequentially, so a single
// last-call timestamp covers the whole polling pass.
type Pacer struct {
	mu       sync.Mutex
	lastCall time.Time
	minDelay time.Duration
	jitter   time.Duration // random extra in [0, jitter) added to each gap
}

// NewPacer creates a pacer that keeps at least minDelay (plus up to jitter)
// between consecutive calls to Wait.
func NewPacer(minDelay, jitter time.Duration) *Pacer {
	return &Pacer{minDelay: minDelay, jitter: jitter}
}

// Wait blocks until enough time has passed since the previous call.
// Returns an error if the context is cancelled while waiting.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	last := p.lastCall
	now := time.Now()

	if last.IsZero() {
		// First call, no wait needed.
		p.lastCall = now
		p.mu.Unlock()
		return nil
	}

	gap := p.minDelay
	if p.jitter > 0 {
		gap += time.Duration(rand.Int63n(int64(p.jitter)))
	}

	elapsed := now.Sub(last)
	if elapsed >= gap {
		p.lastCall = now
		p.mu.Unlock()
		return nil
	}

	remaining := gap - elapsed
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("pacer wait: %w", ctx.Err())
	case <-time.After(remaining):
	}

	p.mu.Lock()
	p.lastCall = time.Now()
	p.mu.Unlock()

	return nil
}
