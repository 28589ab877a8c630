package statistics

import (
	"os"
	"runtime"
	"time"

	"github.com/multiversx/mx-chain-core-go/core"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/shirou/gopsutil/process"
)

var log = logger.GetOrCreate("common/statistics")

// ResourceMonitor outputs statistics about resources used by the binary
type ResourceMonitor struct {
	startTime time.Time
}

// NewResourceMonitor creates a new ResourceMonitor instance
func NewResourceMonitor() *ResourceMonitor {
	return &ResourceMonitor{
		startTime: time.Now(),
	}
}

// GenerateStatistics creates the key/value pairs describing the current resource usage
func (rm *ResourceMonitor) GenerateStatistics() []interface{} {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return []interface{}{
		"uptime", time.Since(rm.startTime).Round(time.Millisecond),
		"num go", runtime.NumGoroutine(),
		"alloc", core.ConvertBytes(memStats.Alloc),
		"heap alloc", core.ConvertBytes(memStats.HeapAlloc),
		"heap inuse", core.ConvertBytes(memStats.HeapInuse),
		"heap num objs", memStats.HeapObjects,
		"sys mem", core.ConvertBytes(memStats.Sys),
		"total mem", core.ConvertBytes(memStats.TotalAlloc),
		"num GC", memStats.NumGC,
		"rss", getResidentMemory(),
	}
}

func getResidentMemory() string {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return "[ERR:" + err.Error() + "]"
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		return "[ERR:" + err.Error() + "]"
	}

	return core.ConvertBytes(memInfo.RSS)
}

// LogStatistics logs the current resource usage on the info level
func (rm *ResourceMonitor) LogStatistics() {
	log.Info("resource usage", rm.GenerateStatistics()...)
}
