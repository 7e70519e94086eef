// Command forksort demonstrates forkpool with a fork/join merge sort: it
// sorts the same random array sequentially, then with forkpool.Pool at a
// few worker counts, and reports timing for each. Grounded on
// original_source/src/demo/mergesort_demo.h's run().
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/kaidevs/forkpool"
	"github.com/schollz/progressbar/v3"
)

func main() {
	size := flag.Int("size", 1_000_000, "number of ints to sort")
	granularity := flag.Int("granularity", 10_000, "minimum subarray size worth forking")
	seed := flag.Int64("seed", 42, "PRNG seed for the input array")
	flag.Parse()

	source := make([]int, *size)
	rng := rand.New(rand.NewSource(*seed))

	bar := progressbar.NewOptions(*size,
		progressbar.OptionSetDescription("generating input"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)
	for i := range source {
		source[i] = rng.Intn(*size)
		_ = bar.Add(1)
	}
	fmt.Println()

	workerCounts := []int{1, runtime.GOMAXPROCS(0), runtime.GOMAXPROCS(0) * 2}
	results := make([]runResult, 0, len(workerCounts)+1)

	results = append(results, timeSequential(source))
	for _, n := range workerCounts {
		results = append(results, timePooled(source, n, *granularity))
	}

	printReport(*size, results)
}

func timeSequential(source []int) runResult {
	array := append([]int(nil), source...)
	temp := make([]int, len(array))

	start := time.Now()
	sequentialMergeSort(array, temp, 0, len(array))
	elapsed := time.Since(start)

	return runResult{Strategy: "sequential", Duration: elapsed, SortedOK: sort.IntsAreSorted(array)}
}

func timePooled(source []int, workers, granularity int) runResult {
	array := append([]int(nil), source...)
	temp := make([]int, len(array))

	p := forkpool.New(forkpool.WithWorkerCount(workers))
	defer func() {
		if err := p.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "pool close:", err)
		}
	}()

	start := time.Now()
	poolMergeSort(p, array, temp, 0, len(array), granularity)
	elapsed := time.Since(start)

	return runResult{Strategy: "forkpool", Workers: workers, Duration: elapsed, SortedOK: sort.IntsAreSorted(array)}
}
