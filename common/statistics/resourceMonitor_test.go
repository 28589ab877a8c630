package statistics_test

import (
	"fmt"
	"testing"

	stats "github.com/multiversx/mx-chain-sortbench-go/common/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceMonitor_GenerateStatisticsShouldPass(t *testing.T) {
	t.Parallel()

	resourceMonitor := stats.NewResourceMonitor()
	require.NotNil(t, resourceMonitor)

	statistics := resourceMonitor.GenerateStatistics()
	require.Equal(t, 0, len(statistics)%2)
	for i := 0; i < len(statistics); i += 2 {
		_, isString := statistics[i].(string)
		assert.True(t, isString, fmt.Sprintf("key at position %d is not a string", i))
	}
}

func TestResourceMonitor_LogStatisticsShouldNotPanic(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r != nil {
			assert.Fail(t, fmt.Sprintf("test should not have paniced: %v", r))
		}
	}()

	stats.NewResourceMonitor().LogStatistics()
}
