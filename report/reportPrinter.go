package report

import (
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/display"
	"github.com/multiversx/mx-chain-sortbench-go/benchmark"
	"github.com/pkg/errors"
)

var statisticsHeader = []string{
	"Sorter",
	"Word list length",
	"Words sorted",
	"Total sorting time",
	"Average time per list",
	"Comparisons per second",
	"Total comparisons",
}

// CreateReport renders the statistics of all benchmark runs as an ASCII table
func CreateReport(results []*benchmark.Statistics) (string, error) {
	if len(results) == 0 {
		return "", errors.New("no benchmark results")
	}

	lines := make([]*display.LineData, 0, len(results))
	for i, stats := range results {
		if stats == nil {
			return "", errors.Errorf("nil benchmark result at index %d", i)
		}

		lines = append(lines, display.NewLineData(false, []string{
			stats.SorterName(),
			fmt.Sprintf("%d", stats.ListLength()),
			fmt.Sprintf("%d", stats.TotalWordsSorted()),
			formatMilliseconds(stats.TotalSortingTime()),
			formatMilliseconds(AverageTimePerList(stats)),
			fmt.Sprintf("%.0f", ComparisonsPerSecond(stats)),
			fmt.Sprintf("%d", stats.TotalComparisons()),
		}))
	}

	table, err := display.CreateTableString(statisticsHeader, lines)
	if err != nil {
		return "", errors.Wrap(err, "cannot create the statistics table")
	}

	return table, nil
}

func formatMilliseconds(duration time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(duration)/float64(time.Millisecond))
}
