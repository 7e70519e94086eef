package forkpool

import (
	"runtime"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Pool at construction time.
type Option func(*poolConfig)

type poolConfig struct {
	workerCount         int
	localStackCapacity  int
	spinIterations      int
	yieldIterations     int
	maxBackoffSleep     time.Duration
	rateLimiter         *rate.Limiter
	bucketCountOverride int // 0 means "use the default", tests only
}

func defaultPoolConfig() *poolConfig {
	return &poolConfig{
		workerCount:        runtime.GOMAXPROCS(0),
		localStackCapacity: 256,
		spinIterations:     20,
		yieldIterations:    10,
		maxBackoffSleep:    5 * time.Millisecond,
	}
}

// WithWorkerCount sets the number of worker goroutines. Values less than 1
// are clamped to 1. Defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.workerCount = n
		} else {
			c.workerCount = 1
		}
	}
}

// WithLocalStackCapacity records a capacity hint for each worker's local LIFO
// stack. The stacks are linked lists with no backing array, so the hint is
// stored in the pool's configuration but does not change how they allocate.
func WithLocalStackCapacity(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.localStackCapacity = n
		}
	}
}

// WithIdleBackoff tunes how an idle worker waits for work: it spins for
// spinIterations loop iterations, then calls runtime.Gosched() for
// yieldIterations iterations, then sleeps with exponential backoff capped at
// maxSleep.
func WithIdleBackoff(spinIterations, yieldIterations int, maxSleep time.Duration) Option {
	return func(c *poolConfig) {
		if spinIterations >= 0 {
			c.spinIterations = spinIterations
		}
		if yieldIterations >= 0 {
			c.yieldIterations = yieldIterations
		}
		if maxSleep > 0 {
			c.maxBackoffSleep = maxSleep
		}
	}
}

// WithSubmitRateLimit throttles admission into the pool: Submit blocks the
// submitting goroutine (never a worker) until the limiter admits the new
// task. It does not reorder or prioritize already-submitted tasks.
func WithSubmitRateLimit(perSecond float64, burst int) Option {
	return func(c *poolConfig) {
		if perSecond > 0 && burst > 0 {
			c.rateLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// withBucketCount overrides the hash map bucket count used internally by the
// pool's worker-identity table. Unexported: the public HashMap constructor
// always uses the package default of 61 buckets.
func withBucketCount(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.bucketCountOverride = n
		}
	}
}
