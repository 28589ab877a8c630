package benchmark

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

// ArgsBenchmarkRunner is the argument DTO used to create a new benchmark runner
type ArgsBenchmarkRunner struct {
	Benchmark   SortingBenchmark
	Sorters     []common.Sorter
	Comparator  common.Comparator
	TotalToSort int
}

type benchmarkRunner struct {
	benchmark   SortingBenchmark
	sorters     []common.Sorter
	comparator  common.Comparator
	totalToSort int
}

// NewBenchmarkRunner creates a runner that benchmarks each of the provided sorters, one after the other
func NewBenchmarkRunner(args ArgsBenchmarkRunner) (*benchmarkRunner, error) {
	err := checkRunnerArgs(args)
	if err != nil {
		return nil, err
	}

	return &benchmarkRunner{
		benchmark:   args.Benchmark,
		sorters:     args.Sorters,
		comparator:  args.Comparator,
		totalToSort: args.TotalToSort,
	}, nil
}

func checkRunnerArgs(args ArgsBenchmarkRunner) error {
	if check.IfNil(args.Benchmark) {
		return ErrNilSortingBenchmark
	}
	if len(args.Sorters) == 0 {
		return ErrNoSorters
	}
	for i, sorter := range args.Sorters {
		if check.IfNil(sorter) {
			return fmt.Errorf("%w at index %d", common.ErrNilSorter, i)
		}
	}
	if check.IfNil(args.Comparator) {
		return common.ErrNilComparator
	}
	if args.TotalToSort < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWordCount, args.TotalToSort)
	}

	return nil
}

// Run benchmarks all the sorters on the provided baseline. It stops at the first failing sorter and returns
// its error unchanged, the sorting benchmark already names the sorter.
func (br *benchmarkRunner) Run(baseline common.WordSequence) ([]*Statistics, error) {
	if check.IfNil(baseline) {
		return nil, common.ErrNilWordSequence
	}

	results := make([]*Statistics, 0, len(br.sorters))
	for _, sorter := range br.sorters {
		log.Info("starting benchmark", "sorter", sorter.Name(), "list length", baseline.Len(), "total to sort", br.totalToSort)

		stats, err := br.benchmark.Run(sorter, baseline, br.comparator, br.totalToSort)
		if err != nil {
			return nil, err
		}

		log.Info("benchmark finished",
			"sorter", stats.SorterName(),
			"words sorted", stats.TotalWordsSorted(),
			"sorting time", stats.TotalSortingTime(),
			"comparisons", stats.TotalComparisons(),
		)
		results = append(results, stats)
	}

	return results, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (br *benchmarkRunner) IsInterfaceNil() bool {
	return br == nil
}
