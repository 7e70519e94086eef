package forkpool

import (
	"testing"
	"time"
)

func TestIdleBackoff_SpinPhaseReturnsImmediately(t *testing.T) {
	b := newIdleBackoff(&poolConfig{spinIterations: 5, yieldIterations: 5, maxBackoffSleep: time.Second})

	start := time.Now()
	for i := 0; i < 5; i++ {
		b.wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("expected spin phase to be fast, took %v", elapsed)
	}
}

func TestIdleBackoff_ResetClearsMisses(t *testing.T) {
	b := newIdleBackoff(&poolConfig{spinIterations: 2, yieldIterations: 2, maxBackoffSleep: time.Second})
	b.wait()
	b.wait()
	b.wait()
	if b.misses == 0 {
		t.Fatal("expected misses to have accumulated")
	}
	b.reset()
	if b.misses != 0 {
		t.Errorf("expected misses reset to 0, got %d", b.misses)
	}
}

func TestIdleBackoff_SleepPhaseRespectsMaxSleep(t *testing.T) {
	maxSleep := 5 * time.Millisecond
	b := newIdleBackoff(&poolConfig{spinIterations: 1, yieldIterations: 1, maxBackoffSleep: maxSleep})

	for i := 0; i < 20; i++ {
		b.wait()
	}

	start := time.Now()
	b.wait()
	if elapsed := time.Since(start); elapsed > maxSleep*4 {
		t.Errorf("expected sleep to stay capped near %v, took %v", maxSleep, elapsed)
	}
}
