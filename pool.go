package forkpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool is a work-stealing task pool: a fixed set of worker goroutines each
// drawing first from their own local LIFO stack, then the pool's shared FIFO
// queue, then from another worker's stack by stealing. Grounded on
// src/thread_pool/thread_pool.h / .cpp.
type Pool struct {
	config *poolConfig

	numWorkers     int
	globalQueue    *Queue[*task]
	localStacks    []*Stack[*task]
	workerIdentity *HashMap[threadID, int]

	startGate chan struct{}
	endFlag   atomic.Bool

	group     errgroup.Group
	done      chan struct{}
	closeOnce sync.Once
}

// New constructs a Pool and immediately starts its workers. Workers block on
// an internal start gate until every one of them has registered its OS
// thread identity, so that the identity table is fully populated before any
// worker — or any caller racing to Submit — can observe a partial one.
//
// Unlike the original implementation, a worker's OS thread id is not known
// until the worker goroutine itself has run and called
// runtime.LockOSThread(); there is no Go equivalent of reading
// std::thread::get_id() from the spawning thread before the new thread's
// first instruction. Each worker therefore registers itself, and New waits
// (via an ordinary sync.WaitGroup) for every worker to finish registering
// before opening the start gate.
func New(opts ...Option) *Pool {
	cfg := defaultPoolConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	n := cfg.workerCount
	p := &Pool{
		config:         cfg,
		numWorkers:     n,
		globalQueue:    NewQueue[*task](),
		localStacks:    make([]*Stack[*task], n),
		workerIdentity: newHashMapWithBuckets[threadID, int](cfg.bucketCountOverride),
		startGate:      make(chan struct{}),
		done:           make(chan struct{}),
	}
	for i := range p.localStacks {
		p.localStacks[i] = NewStack[*task]()
	}

	var registered sync.WaitGroup
	registered.Add(n)
	for i := range n {
		p.group.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			p.workerIdentity.Insert(currentThreadID(), i)
			registered.Done()

			<-p.startGate
			p.workerLoop(i)
			return nil
		})
	}
	registered.Wait()
	close(p.startGate)

	go func() {
		_ = p.group.Wait()
		close(p.done)
	}()

	return p
}

// NumWorkers returns the number of worker goroutines in the pool.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// RunPendingTask runs one pending task, if any is available, and reports
// whether it did. Call this — typically in a loop — while a goroutine is
// blocked waiting on a Handle it forked from the pool, so that the pool
// keeps making progress even if every worker is similarly blocked on nested
// work.
func (p *Pool) RunPendingTask() bool {
	if index, ok := p.workerIdentity.Get(currentThreadID()); ok {
		return p.runLocalTask(index) || p.runGlobalTask() || p.runStolenTask(index)
	}
	// A non-worker has no stack of its own: it tries worker 0's stack, then
	// steals from the others in order.
	return p.runGlobalTask() || p.runLocalTask(0) || p.runStolenTask(0)
}

// RunPendingTasksUntil calls RunPendingTask in a loop until ready returns
// true. ready is typically a Handle's IsReady method.
func (p *Pool) RunPendingTasksUntil(ready func() bool) {
	for !ready() {
		p.RunPendingTask()
	}
}

// submitInternal routes t to the calling goroutine's local stack if it is a
// worker, or to the global queue otherwise. The rate limiter, if configured,
// only ever throttles the non-worker path: a worker blocking on it while
// forking nested work would starve the very pool it is part of.
func (p *Pool) submitInternal(t *task) {
	if index, ok := p.workerIdentity.Get(currentThreadID()); ok {
		p.localStacks[index].Push(t)
		return
	}
	if p.config.rateLimiter != nil {
		_ = p.config.rateLimiter.Wait(context.Background())
	}
	p.globalQueue.Push(t)
}

// Submit binds fn to a fresh Handle and schedules it on p, returning the
// Handle immediately. fn runs on whichever worker ends up claiming the task,
// local, global, or stolen.
func Submit[T any](p *Pool, fn func() (T, error)) *Handle[T] {
	h := newHandle[T]()
	p.submitInternal(bindTask(fn, h))
	return h
}

// Close sets the end flag, so every worker exits its loop once it finishes
// whatever it is currently running, then joins all of them. Any task still
// sitting in the global queue or a local stack at that point never runs; its
// Handle instead resolves to ErrPoolShutdown.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		p.endFlag.Store(true)
	})
	<-p.done
	p.abortPending()
	return nil
}

func (p *Pool) abortPending() {
	for {
		t, ok := p.globalQueue.TryPop()
		if !ok {
			break
		}
		t.abort()
	}
	for _, stack := range p.localStacks {
		for {
			t, ok := stack.TryPop()
			if !ok {
				break
			}
			t.abort()
		}
	}
}
