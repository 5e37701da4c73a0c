package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestWait_EnforcesMinDelay(t *testing.T) {
	pacer := NewPacer(100*time.Millisecond, 0)
	ctx := context.Background()

	// First call should return immediately.
	if err := pacer.Wait(ctx); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	start := time.Now()
	if err := pacer.Wait(ctx); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	elapsed := time.Since(start)

	// Should have waited at least ~100ms (allow 80ms for timer jitter).
	if elapsed < 80*time.Millisecond {
		t.Errorf("expected >= 80ms wait, got %v", elapsed)
	}
}

func TestWait_FirstCallImmediate(t *testing.T) {
	pacer := NewPacer(5*time.Second, time.Second)

	start := time.Now()
	if err := pacer.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("first call should be near-instant, took %v", elapsed)
	}
}

func TestWait_JitterBoundsGap(t *testing.T) {
	pacer := NewPacer(50*time.Millisecond, 50*time.Millisecond)
	ctx := context.Background()

	if err := pacer.Wait(ctx); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	start := time.Now()
	if err := pacer.Wait(ctx); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	elapsed := time.Since(start)

	if elapsed < 30*time.Millisecond {
		t.Errorf("gap shorter than min delay: %v", elapsed)
	}
	if elapsed > 300*time.Millisecond {
		t.Errorf("gap far beyond min delay + jitter: %v", elapsed)
	}
}

func TestWait_ContextCancellation(t *testing.T) {
	pacer := NewPacer(5*time.Second, 0) // long delay

	// First call to seed the last-call time.
	if err := pacer.Wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	if err := pacer.Wait(ctx); err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
}
