// Package forkpool implements a work-stealing task pool for fork/join style
// parallelism, along with the small set of concurrent containers it is built
// from: a two-mutex FIFO queue, a single-mutex LIFO stack, a hand-over-hand
// locked linked list, and a bucketed hash map built on top of that list.
//
// # Basic usage
//
//	p := forkpool.New(forkpool.WithWorkerCount(4))
//	defer p.Close()
//
//	h := forkpool.Submit(p, func() (int, error) {
//		return 42, nil
//	})
//	v, err := h.Take()
//
// # Fork/join
//
// A goroutine running inside the pool (a worker, or any caller that holds a
// handle submitted from a worker) must never simply block on Handle.Wait for
// a task it forked from the pool: every worker is drawn from a fixed set, so
// blocking all of them on nested work can deadlock the pool. Instead, drive
// the pool forward while waiting:
//
//	h := forkpool.Submit(p, leftHalf)
//	rightResult := rightHalf()
//	p.RunPendingTasksUntil(h.IsReady)
//	leftResult, err := h.Take()
//
// See cmd/forksort for a complete fork/join merge sort built this way.
package forkpool
