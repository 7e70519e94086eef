package forkpool

// Metrics is a point-in-time snapshot of a Pool's queue occupancy, useful
// for diagnosing imbalance between workers. cmd/forksort's report shows
// timing results only; it does not render Metrics.
type Metrics struct {
	GlobalQueueLen int
	LocalStackLens []int
}

// Metrics returns a snapshot of p's current queue occupancy. Like any
// concurrent snapshot, it is stale the instant it is taken.
func (p *Pool) Metrics() Metrics {
	lens := make([]int, p.numWorkers)
	for i, s := range p.localStacks {
		lens[i] = s.Len()
	}
	return Metrics{
		GlobalQueueLen: p.globalQueue.Len(),
		LocalStackLens: lens,
	}
}
