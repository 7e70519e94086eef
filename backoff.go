package forkpool

import (
	"runtime"
	"time"

	"github.com/kaidevs/forkpool/internal/algorithms"
)

// idleBackoff decides how a worker waits when it found no local, global, or
// stealable task on its most recent pass. It spins for a while, then yields
// to the Go scheduler, then sleeps with jittered exponential backoff up to a
// cap — this keeps latency low for bursty submission while not pegging a CPU
// once the pool genuinely has nothing to do. The sleep phase delegates to
// internal/algorithms' jittered BackoffStrategy.
type idleBackoff struct {
	spinIterations  int
	yieldIterations int
	sleep           algorithms.BackoffStrategy
	misses          int
}

func newIdleBackoff(cfg *poolConfig) *idleBackoff {
	return &idleBackoff{
		spinIterations:  cfg.spinIterations,
		yieldIterations: cfg.yieldIterations,
		sleep: algorithms.NewBackoffStrategy(
			algorithms.BackoffJittered,
			50*time.Microsecond,
			cfg.maxBackoffSleep,
			0.25,
		),
	}
}

// reset is called whenever a worker successfully runs a task, since a burst
// just ended and the next miss should start spinning again.
func (b *idleBackoff) reset() {
	b.misses = 0
	b.sleep.Reset()
}

// wait backs off according to the number of consecutive empty passes: it
// returns at once during the spin phase, yields during the yield phase, and
// after that sleeps for an exponentially growing, jittered, capped delay.
func (b *idleBackoff) wait() {
	b.misses++
	switch {
	case b.misses <= b.spinIterations:
		return
	case b.misses <= b.spinIterations+b.yieldIterations:
		runtime.Gosched()
	default:
		attempt := b.misses - (b.spinIterations + b.yieldIterations)
		time.Sleep(b.sleep.NextDelay(attempt, nil))
	}
}
