package config

import (
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-sortbench-go/sorters"
)

const (
	// DefaultTotalWordsToSort is the number of words each sorter sorts when the configuration does not say otherwise
	DefaultTotalWordsToSort = 1000000
	// DefaultOutputDirectory is the directory where the sorted snapshots are written by default
	DefaultOutputDirectory = "."
)

// BenchmarkSection holds the benchmark run settings
type BenchmarkSection struct {
	TotalWordsToSort int
	Sorters          []string
	OutputDirectory  string
}

// ReportSection holds the report output settings
type ReportSection struct {
	ShowHostInfo bool
}

// BenchmarkConfig will hold the whole sorting benchmark configuration
type BenchmarkConfig struct {
	Benchmark BenchmarkSection
	Report    ReportSection
}

// DefaultBenchmarkConfig returns the configuration used when no configuration file is provided
func DefaultBenchmarkConfig() *BenchmarkConfig {
	return &BenchmarkConfig{
		Benchmark: BenchmarkSection{
			TotalWordsToSort: DefaultTotalWordsToSort,
			Sorters: []string{
				sorters.QuickSortType,
				sorters.MergeSortType,
				sorters.InsertionSortType,
			},
			OutputDirectory: DefaultOutputDirectory,
		},
		Report: ReportSection{
			ShowHostInfo: true,
		},
	}
}

// LoadBenchmarkConfig returns a BenchmarkConfig by reading the config file provided. Values missing from the
// file keep their defaults
func LoadBenchmarkConfig(filepath string) (*BenchmarkConfig, error) {
	cfg := DefaultBenchmarkConfig()
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
