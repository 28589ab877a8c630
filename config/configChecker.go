package config

import (
	"fmt"

	"github.com/multiversx/mx-chain-sortbench-go/sorters"
)

// CheckConfig checks that the benchmark configuration values are usable
func CheckConfig(cfg *BenchmarkConfig) error {
	if cfg == nil {
		return errNilConfig
	}
	if cfg.Benchmark.TotalWordsToSort < 0 {
		return fmt.Errorf("%w: %d", errNegativeTotalWordsToSort, cfg.Benchmark.TotalWordsToSort)
	}

	return checkSorterNames(cfg.Benchmark.Sorters)
}

func checkSorterNames(names []string) error {
	if len(names) == 0 {
		return errNoSortersConfigured
	}

	for idx, name := range names {
		_, err := sorters.NewSorter(name)
		if err != nil {
			return fmt.Errorf("%w at index %d: %s", errInvalidSorterName, idx, err.Error())
		}
	}

	return nil
}
