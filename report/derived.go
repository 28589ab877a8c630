package report

import (
	"time"

	"github.com/multiversx/mx-chain-sortbench-go/benchmark"
)

// AverageTimePerList returns the mean sorting time of one list, or 0 if no list was sorted
func AverageTimePerList(stats *benchmark.Statistics) time.Duration {
	if stats.NumRuns() == 0 {
		return 0
	}

	return stats.TotalSortingTime() / time.Duration(stats.NumRuns())
}

// ComparisonsPerSecond returns the comparator throughput, or 0 if no time was spent sorting
func ComparisonsPerSecond(stats *benchmark.Statistics) float64 {
	return perSecond(float64(stats.TotalComparisons()), stats.TotalSortingTime())
}

// WordsPerSecond returns the sorting throughput in words, or 0 if no time was spent sorting
func WordsPerSecond(stats *benchmark.Statistics) float64 {
	return perSecond(float64(stats.TotalWordsSorted()), stats.TotalSortingTime())
}

func perSecond(value float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}

	return value / elapsed.Seconds()
}
