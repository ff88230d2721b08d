package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/config"
)

// maxShowDepth limits printing press sequences, which grow exponentially.
const maxShowDepth = 4

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

type cliConfig struct {
	config.Config
	CodesPath string
	Show      bool
}

// parse processes command-line arguments. shouldExit reports a clean exit
// without work, e.g. after printing the help text.
func parse(args []string, output io.Writer) (cfg *cliConfig, shouldExit bool, err error) {
	flagSet := flag.NewFlagSet("keypadsolver", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
keypadsolver - minimal presses to enter door codes through a chain of keypad robots.

Usage:
  keypadsolver [options] [CODES_FILE]

Arguments:
  CODES_FILE
    File with one numeric keypad code per line, e.g. 029A.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	depthFlag := flagSet.Int("depth", def.Depth, "Number of directional keypad robots.")
	workersFlag := flagSet.Int("workers", def.Workers, "Number of concurrent workers.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format: 'text' or 'json'.")
	showFlag := flagSet.Bool("show", false, fmt.Sprintf("Print one minimal press sequence per code (depth <= %d).", maxShowDepth))

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg = &cliConfig{Config: def, CodesPath: flagSet.Arg(0), Show: *showFlag}
	if *configFlag != "" {
		if cfg.Config, err = config.Load(*configFlag, cfg.Config); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	// explicitly set flags override the configuration file
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Depth = *depthFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.Show && cfg.Depth > maxShowDepth {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("-show requires depth <= %d", maxShowDepth)}
	}
	if cfg.CodesPath == "" && len(cfg.Codes) == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	return cfg, false, nil
}
