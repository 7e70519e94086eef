package main

import "github.com/kaidevs/forkpool"

// doMerge merges the two sorted halves array[start:mid] and array[mid:end]
// using temp as scratch space, then copies the merged run back into array.
// Grounded on original_source/src/demo/mergesort_demo.h's do_sort.
func doMerge(array, temp []int, start, mid, end int) {
	left, right := start, mid
	for i := start; i < end; i++ {
		switch {
		case left == mid:
			temp[i] = array[right]
			right++
		case right == end:
			temp[i] = array[left]
			left++
		case array[left] < array[right]:
			temp[i] = array[left]
			left++
		default:
			temp[i] = array[right]
			right++
		}
	}
	copy(array[start:end], temp[start:end])
}

// sequentialMergeSort is the baseline, single-goroutine recursive merge
// sort used for comparison against the pool-driven version.
func sequentialMergeSort(array, temp []int, start, end int) {
	if end-start <= 1 {
		return
	}
	mid := start + (end-start)/2
	sequentialMergeSort(array, temp, start, mid)
	sequentialMergeSort(array, temp, mid, end)
	doMerge(array, temp, start, mid, end)
}

// poolMergeSort sorts array[start:end] in place, forking the left half onto
// p whenever there are at least granularity elements to sort and always
// recursing inline for the right half. Grounded on
// original_source/src/demo/mergesort_demo.h's thread_pool_mergesort: only
// one half is ever handed to the pool, because forking both halves from
// every recursive call would win nothing (the right half would just end up
// queued with no thread free to act on it any sooner than running it
// inline) while doubling the bookkeeping.
func poolMergeSort(p *forkpool.Pool, array, temp []int, start, end, granularity int) {
	numElements := end - start
	if numElements <= 1 {
		return
	}
	mid := start + numElements/2

	var forked *forkpool.Handle[struct{}]
	if numElements >= granularity {
		forked = forkpool.Submit(p, func() (struct{}, error) {
			poolMergeSort(p, array, temp, start, mid, granularity)
			return struct{}{}, nil
		})
	} else {
		poolMergeSort(p, array, temp, start, mid, granularity)
	}

	poolMergeSort(p, array, temp, mid, end, granularity)

	if forked != nil {
		// Drive the pool forward instead of just blocking: if every
		// worker is itself waiting on a nested fork, nothing will ever
		// mark this one ready.
		p.RunPendingTasksUntil(forked.IsReady)
		_, _ = forked.Take()
	}

	doMerge(array, temp, start, mid, end)
}
