package forkpool

// This file holds the scheduling order a worker (or a caller draining the
// pool via RunPendingTask) follows to find its next piece of work: local
// stack, then global queue, then stealing from another worker — grounded on
// thread_pool.cpp's get_local_task/get_global_task/steal_task and
// run_local_task/run_global_task/run_stolen_task.

func (p *Pool) getLocalTask(index int) (*task, bool) {
	return p.localStacks[index].TryPop()
}

func (p *Pool) getGlobalTask() (*task, bool) {
	return p.globalQueue.TryPop()
}

// stealTask tries every other worker's local stack in turn, starting one
// past index and wrapping around. Thieves pop from the same end the owning
// worker does (the top of the LIFO stack) — there is no split-end stealing.
func (p *Pool) stealTask(index int) (*task, bool) {
	for i := 1; i < p.numWorkers; i++ {
		victim := (index + i) % p.numWorkers
		if t, ok := p.localStacks[victim].TryPop(); ok {
			return t, true
		}
	}
	return nil, false
}

func (p *Pool) runLocalTask(index int) bool {
	if t, ok := p.getLocalTask(index); ok {
		t.run()
		return true
	}
	return false
}

func (p *Pool) runGlobalTask() bool {
	if t, ok := p.getGlobalTask(); ok {
		t.run()
		return true
	}
	return false
}

func (p *Pool) runStolenTask(index int) bool {
	if t, ok := p.stealTask(index); ok {
		t.run()
		return true
	}
	return false
}

// workerLoop is the body of a single worker goroutine: local, then global,
// then steal, then back off if all three came up empty.
func (p *Pool) workerLoop(index int) {
	backoff := newIdleBackoff(p.config)
	for !p.endFlag.Load() {
		if p.runLocalTask(index) || p.runGlobalTask() || p.runStolenTask(index) {
			backoff.reset()
			continue
		}
		backoff.wait()
	}
}
