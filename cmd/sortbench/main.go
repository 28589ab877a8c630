package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/denisbrodbeck/machineid"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-sortbench-go/alphabet"
	"github.com/multiversx/mx-chain-sortbench-go/benchmark"
	"github.com/multiversx/mx-chain-sortbench-go/common/statistics"
	"github.com/multiversx/mx-chain-sortbench-go/comparator"
	"github.com/multiversx/mx-chain-sortbench-go/config"
	"github.com/multiversx/mx-chain-sortbench-go/fileio"
	"github.com/multiversx/mx-chain-sortbench-go/report"
	"github.com/multiversx/mx-chain-sortbench-go/sorters"
	"github.com/multiversx/mx-chain-sortbench-go/wordlist"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	unversionedAppString = "undefined"
	maxMachineIDLen      = 10
)

var (
	sortBenchHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} {{.ArgsUsage}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

	errWrongNumberOfArguments = errors.New("expected exactly two arguments: ALPHABET_FILE WORDLIST_FILE")
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = unversionedAppString

var log = logger.GetOrCreate("main")

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = sortBenchHelpTemplate
	app.Name = "Sorting Benchmark CLI App"
	machineID, err := machineid.ProtectedID(app.Name)
	if err != nil {
		log.Warn("error fetching machine id", "error", err)
		machineID = "unknown"
	}
	if len(machineID) > maxMachineIDLen {
		machineID = machineID[:maxMachineIDLen]
	}

	app.Version = fmt.Sprintf("%s/%s/%s-%s/%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, machineID)
	app.Usage = "This tool sorts a word list under a custom alphabet with several algorithms and reports their performance"
	app.ArgsUsage = "ALPHABET_FILE WORDLIST_FILE"
	app.Flags = getFlags()
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return startBenchmark(c, app.Version)
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startBenchmark(ctx *cli.Context, version string) error {
	flags, err := getFlagsConfig(ctx)
	if err != nil {
		return err
	}

	err = initLogger(flags)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.configFile)
	if err != nil {
		return err
	}
	applyFlags(flags, cfg)

	err = config.CheckConfig(cfg)
	if err != nil {
		return err
	}

	resourceMonitor := statistics.NewResourceMonitor()
	runner, baseline, err := createBenchmarkRunner(flags, cfg)
	if err != nil {
		return err
	}
	resourceMonitor.LogStatistics()

	results, err := runner.Run(baseline)
	if err != nil {
		return err
	}
	resourceMonitor.LogStatistics()

	return printReport(cfg, version, results)
}

func initLogger(flags *flagsConfig) error {
	logger.ToggleLoggerName(flags.enableLogName)
	err := logger.SetLogLevel(flags.logLevel)
	if err != nil {
		return err
	}

	if flags.disableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			//we need to print this manually as we do not have console log observer
			fmt.Println("error removing log observer: " + err.Error())
			return err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			//we need to print this manually as we do not have console log observer
			fmt.Println("error setting log observer: " + err.Error())
			return err
		}
	}
	log.Trace("logger updated", "level", flags.logLevel, "disable ANSI color", flags.disableAnsiColor)

	return nil
}

func loadConfig(filePath string) (*config.BenchmarkConfig, error) {
	if !core.FileExists(filePath) {
		log.Warn("configuration file not found, using the default values", "path", filePath)
		return config.DefaultBenchmarkConfig(), nil
	}

	cfg, err := config.LoadBenchmarkConfig(filePath)
	if err != nil {
		return nil, err
	}
	log.Debug("config", "file", filePath)

	return cfg, nil
}

func createBenchmarkRunner(flags *flagsConfig, cfg *config.BenchmarkConfig) (benchmark.BenchmarkRunner, *wordlist.WordList, error) {
	ordering, err := fileio.LoadAlphabet(flags.alphabetFile)
	if err != nil {
		return nil, nil, err
	}

	customAlphabet, err := alphabet.NewAlphabet(ordering)
	if err != nil {
		return nil, nil, err
	}

	alphabetComparator, err := comparator.NewAlphabetComparator(customAlphabet)
	if err != nil {
		return nil, nil, err
	}

	words, err := fileio.LoadWordList(flags.wordListFile)
	if err != nil {
		return nil, nil, err
	}

	sortersList, err := sorters.NewSorters(cfg.Benchmark.Sorters)
	if err != nil {
		return nil, nil, err
	}

	persister, err := fileio.NewSnapshotPersister(cfg.Benchmark.OutputDirectory)
	if err != nil {
		return nil, nil, err
	}

	sortingBenchmark, err := benchmark.NewSortingBenchmark(benchmark.ArgsSortingBenchmark{
		Persister: persister,
	})
	if err != nil {
		return nil, nil, err
	}

	runner, err := benchmark.NewBenchmarkRunner(benchmark.ArgsBenchmarkRunner{
		Benchmark:   sortingBenchmark,
		Sorters:     sortersList,
		Comparator:  alphabetComparator,
		TotalToSort: cfg.Benchmark.TotalWordsToSort,
	})
	if err != nil {
		return nil, nil, err
	}

	return runner, wordlist.NewWordList(words), nil
}

func printReport(cfg *config.BenchmarkConfig, version string, results []*benchmark.Statistics) error {
	if cfg.Report.ShowHostInfo {
		hostInfo := report.NewHostParametersGetter(version).GetHostInfo()
		hostTable, err := hostInfo.ToDisplayTable()
		if err != nil {
			return err
		}

		fmt.Println(hostTable)
	}

	statisticsTable, err := report.CreateReport(results)
	if err != nil {
		return err
	}

	fmt.Println(statisticsTable)

	return nil
}
