package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTomlBenchmarkParser(t *testing.T) {
	t.Parallel()

	cfgExpected := BenchmarkConfig{
		Benchmark: BenchmarkSection{
			TotalWordsToSort: 250000,
			Sorters:          []string{"merge", "quick"},
			OutputDirectory:  "./snapshots",
		},
		Report: ReportSection{
			ShowHostInfo: false,
		},
	}

	testString := `
[Benchmark]
    TotalWordsToSort = 250000
    Sorters = ["merge", "quick"]
    OutputDirectory = "./snapshots"

[Report]
    ShowHostInfo = false
`
	cfg := BenchmarkConfig{}

	err := toml.Unmarshal([]byte(testString), &cfg)

	require.Nil(t, err)
	require.Equal(t, cfgExpected, cfg)
}

func TestLoadBenchmarkConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadBenchmarkConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.NotNil(t, err)
		assert.Nil(t, cfg)
	})
	t.Run("partial file should keep the defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		err := os.WriteFile(path, []byte("[Benchmark]\n    TotalWordsToSort = 42\n"), 0644)
		require.Nil(t, err)

		cfg, err := LoadBenchmarkConfig(path)
		require.Nil(t, err)

		expected := DefaultBenchmarkConfig()
		expected.Benchmark.TotalWordsToSort = 42
		assert.Equal(t, expected, cfg)
	})
}

func TestDefaultBenchmarkConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultBenchmarkConfig()
	assert.Equal(t, DefaultTotalWordsToSort, cfg.Benchmark.TotalWordsToSort)
	assert.Equal(t, []string{"quick", "merge", "insertion"}, cfg.Benchmark.Sorters)
	assert.True(t, cfg.Report.ShowHostInfo)
	assert.Nil(t, CheckConfig(cfg))
}
