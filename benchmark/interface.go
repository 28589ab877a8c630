package benchmark

import (
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

// SortingBenchmark defines the component able to gather statistics for one sorter
type SortingBenchmark interface {
	Run(sorter common.Sorter, baseline common.WordSequence, comparator common.Comparator, totalToSort int) (*Statistics, error)
	IsInterfaceNil() bool
}

// BenchmarkRunner defines the component able to benchmark a set of sorters on the same baseline
type BenchmarkRunner interface {
	Run(baseline common.WordSequence) ([]*Statistics, error)
	IsInterfaceNil() bool
}
