package main

import (
	"github.com/multiversx/mx-chain-sortbench-go/config"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

type flagsConfig struct {
	alphabetFile     string
	wordListFile     string
	configFile       string
	outputDirectory  string
	logLevel         string
	disableAnsiColor bool
	enableLogName    bool
}

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the benchmark toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the benchmark configuration file. This TOML file contains " +
			"the number of words to sort, the sorters to run and the output directory. Built-in defaults are " +
			"used if the file does not exist.",
		Value: "./config/config.toml",
	}
	// outputDirectory defines a flag that overrides the directory where the sorted snapshots are written
	outputDirectory = cli.StringFlag{
		Name:  "output-dir",
		Usage: "The `" + filePathPlaceholder + "` of the directory where the sorted word lists are written.",
		Value: "",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,benchmark:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the benchmark package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// logWithLoggerName is used to enable log correlation elements
	logWithLoggerName = cli.BoolFlag{
		Name:  "log-logger-name",
		Usage: "Boolean option for logger name in the logs.",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		outputDirectory,
		logLevel,
		disableAnsiColor,
		logWithLoggerName,
	}
}

func getFlagsConfig(ctx *cli.Context) (*flagsConfig, error) {
	if ctx.NArg() != 2 {
		return nil, errWrongNumberOfArguments
	}

	return &flagsConfig{
		alphabetFile:     ctx.Args().Get(0),
		wordListFile:     ctx.Args().Get(1),
		configFile:       ctx.GlobalString(configurationFile.Name),
		outputDirectory:  ctx.GlobalString(outputDirectory.Name),
		logLevel:         ctx.GlobalString(logLevel.Name),
		disableAnsiColor: ctx.GlobalBool(disableAnsiColor.Name),
		enableLogName:    ctx.GlobalBool(logWithLoggerName.Name),
	}, nil
}

func applyFlags(flags *flagsConfig, cfg *config.BenchmarkConfig) {
	if len(flags.outputDirectory) > 0 {
		log.Debug("output directory overridden", "path", flags.outputDirectory)
		cfg.Benchmark.OutputDirectory = flags.outputDirectory
	}
}
