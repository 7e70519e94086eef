package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// runResult is one timed run of a sort strategy over a fixed array size.
type runResult struct {
	Strategy string
	Workers  int
	Duration time.Duration
	SortedOK bool
}

func printReport(size int, results []runResult) {
	bold.Printf("\nMerge sort of %d ints\n", size)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Strategy", "Workers", "Time", "Sorted")

	fastest := results[0].Duration
	for _, r := range results {
		if r.Duration < fastest {
			fastest = r.Duration
		}
	}

	for _, r := range results {
		sortedCell := green.Sprint("yes")
		if !r.SortedOK {
			sortedCell = red.Sprint("no")
		}
		workers := fmt.Sprintf("%d", r.Workers)
		if r.Workers == 0 {
			workers = "-"
		}
		speedup := fmt.Sprintf("%.2fx", float64(fastest)/float64(r.Duration))
		_ = table.Append(r.Strategy, workers, fmt.Sprintf("%s (%s)", r.Duration.Round(time.Millisecond), speedup), sortedCell)
	}

	if err := table.Render(); err != nil {
		red.Println("failed to render report table:", err)
	}
}
