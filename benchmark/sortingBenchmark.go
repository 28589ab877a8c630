package benchmark

import (
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-sortbench-go/common"
	"github.com/multiversx/mx-chain-sortbench-go/comparator"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("benchmark")

// ArgsSortingBenchmark is the argument DTO used to create a new sorting benchmark
type ArgsSortingBenchmark struct {
	Persister common.SnapshotPersister
}

type sortingBenchmark struct {
	persister common.SnapshotPersister
}

// NewSortingBenchmark creates a new sorting benchmark. The benchmark does not keep state between runs,
// all the gathered values are returned as Statistics.
func NewSortingBenchmark(args ArgsSortingBenchmark) (*sortingBenchmark, error) {
	if check.IfNil(args.Persister) {
		return nil, ErrNilSnapshotPersister
	}

	return &sortingBenchmark{
		persister: args.Persister,
	}, nil
}

// Run repeatedly sorts clones of the baseline until at least totalToSort words were sorted. The number of words
// actually sorted is the smallest multiple of the baseline length that is not less than totalToSort.
// Only the sort calls are timed. The last sorted clone is persisted once, under the sorter's name.
func (sb *sortingBenchmark) Run(
	sorter common.Sorter,
	baseline common.WordSequence,
	baseComparator common.Comparator,
	totalToSort int,
) (*Statistics, error) {
	err := checkRunArguments(sorter, baseline, baseComparator, totalToSort)
	if err != nil {
		return nil, err
	}

	countingComparator, err := comparator.NewCountingComparator(baseComparator)
	if err != nil {
		return nil, err
	}

	stats := NewStatistics(sorter.Name(), baseline.Len())
	var sorted common.WordSequence
	for stats.TotalWordsSorted() < totalToSort {
		sorted = baseline.Clone()

		startTime := time.Now()
		err = sorter.Sort(sorted, countingComparator)
		elapsed := time.Since(startTime)
		if err != nil {
			return nil, fmt.Errorf("%w, sorter %s, run %d", err, sorter.Name(), stats.NumRuns())
		}

		stats.AddRun(elapsed)
		log.Trace("sorting run finished", "sorter", sorter.Name(), "run", stats.NumRuns(), "elapsed", elapsed)
	}
	stats.SetTotalComparisons(countingComparator.Count())

	if check.IfNil(sorted) {
		log.Debug("no sorting run was needed, nothing to persist", "sorter", sorter.Name(), "total to sort", totalToSort)
		return stats, nil
	}

	err = sb.persister.Persist(sorter.Name(), sorted)
	if err != nil {
		return nil, fmt.Errorf("%w while persisting the result of %s", err, sorter.Name())
	}

	return stats, nil
}

func checkRunArguments(
	sorter common.Sorter,
	baseline common.WordSequence,
	baseComparator common.Comparator,
	totalToSort int,
) error {
	if check.IfNil(sorter) {
		return common.ErrNilSorter
	}
	if check.IfNil(baseline) {
		return common.ErrNilWordSequence
	}
	if check.IfNil(baseComparator) {
		return common.ErrNilComparator
	}
	if totalToSort < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWordCount, totalToSort)
	}
	if totalToSort > 0 && baseline.Len() == 0 {
		return fmt.Errorf("%w, %d words requested", ErrEmptyWordSequence, totalToSort)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (sb *sortingBenchmark) IsInterfaceNil() bool {
	return sb == nil
}
