package report

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/display"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// HostInfo holds the host parameters printed next to the benchmark results
type HostInfo struct {
	AppVersion      string
	GoVersion       string
	OS              string
	Architecture    string
	CPUModel        string
	CPUNumLogical   int
	CPUMaxFreqInMHz int
	CPUFlags        []string
	MemorySize      string
}

type hostParametersGetter struct {
	versionString string
}

// NewHostParametersGetter will create a structure that is able to get and format the host's relevant parameters
func NewHostParametersGetter(version string) *hostParametersGetter {
	return &hostParametersGetter{
		versionString: version,
	}
}

// GetHostInfo is able to get all the known parameters of a host. Parameters that cannot be read are
// replaced by an error marker.
func (hpg *hostParametersGetter) GetHostInfo() *HostInfo {
	hi := &HostInfo{
		AppVersion:   hpg.versionString,
		GoVersion:    runtime.Version(),
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}

	hpg.applyCpuInfo(hi)
	hpg.applyMemInfo(hi)

	return hi
}

func (hpg *hostParametersGetter) applyCpuInfo(hi *HostInfo) {
	rawCpuInfo, err := cpu.Info()
	if err != nil {
		hi.CPUModel = fmt.Sprintf("[ERR:%s]", err)
		return
	}

	if len(rawCpuInfo) == 0 {
		hi.CPUModel = "[ERR:no logical cpus]"
		return
	}

	hi.CPUNumLogical = len(rawCpuInfo)
	hi.CPUModel = rawCpuInfo[0].ModelName
	hi.CPUMaxFreqInMHz = int(rawCpuInfo[0].Mhz)
	hi.CPUFlags = rawCpuInfo[0].Flags
	sort.Slice(hi.CPUFlags, func(i, j int) bool {
		return strings.Compare(hi.CPUFlags[i], hi.CPUFlags[j]) < 0
	})
}

func (hpg *hostParametersGetter) applyMemInfo(hi *HostInfo) {
	vms, err := mem.VirtualMemory()
	if err != nil {
		hi.MemorySize = fmt.Sprintf("[ERR:%s]", err)
		return
	}

	hi.MemorySize = core.ConvertBytes(vms.Total)
}

// IsInterfaceNil returns true if there is no value under the interface
func (hpg *hostParametersGetter) IsInterfaceNil() bool {
	return hpg == nil
}

// ToDisplayTable renders the host parameters as a two column ASCII table
func (hi *HostInfo) ToDisplayTable() (string, error) {
	lines := []*display.LineData{
		display.NewLineData(false, []string{"App version", hi.AppVersion}),
		display.NewLineData(false, []string{"Go version", hi.GoVersion}),
		display.NewLineData(false, []string{"OS / architecture", hi.OS + "/" + hi.Architecture}),
		display.NewLineData(false, []string{"CPU model", hi.CPUModel}),
		display.NewLineData(false, []string{"CPU logical cores", fmt.Sprintf("%d", hi.CPUNumLogical)}),
		display.NewLineData(false, []string{"CPU frequency", fmt.Sprintf("%d MHz", hi.CPUMaxFreqInMHz)}),
		display.NewLineData(false, []string{"CPU flags", strings.Join(hi.CPUFlags, " ")}),
		display.NewLineData(false, []string{"Memory", hi.MemorySize}),
	}

	return display.CreateTableString([]string{"Host parameter", "Value"}, lines)
}
