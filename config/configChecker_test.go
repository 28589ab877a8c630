package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-sortbench-go/sorters"
	"github.com/stretchr/testify/assert"
)

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config should error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, errNilConfig, CheckConfig(nil))
	})
	t.Run("negative total should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultBenchmarkConfig()
		cfg.Benchmark.TotalWordsToSort = -1

		err := CheckConfig(cfg)
		assert.True(t, errors.Is(err, errNegativeTotalWordsToSort))
	})
	t.Run("empty sorters list should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultBenchmarkConfig()
		cfg.Benchmark.Sorters = nil

		assert.Equal(t, errNoSortersConfigured, CheckConfig(cfg))
	})
	t.Run("unknown sorter should error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultBenchmarkConfig()
		cfg.Benchmark.Sorters = []string{"merge", "bogo"}

		err := CheckConfig(cfg)
		assert.True(t, errors.Is(err, errInvalidSorterName))
		assert.True(t, strings.Contains(err.Error(), "index 1"))
		assert.True(t, strings.Contains(err.Error(), sorters.ErrUnknownSorterType.Error()))
	})
	t.Run("zero total should work", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultBenchmarkConfig()
		cfg.Benchmark.TotalWordsToSort = 0

		assert.Nil(t, CheckConfig(cfg))
	})
	t.Run("names are case insensitive", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultBenchmarkConfig()
		cfg.Benchmark.Sorters = []string{" Quick", "MERGE"}

		assert.Nil(t, CheckConfig(cfg))
	})
}
