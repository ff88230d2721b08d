// Package config holds the run configuration of the solver and loads it
// from HCL files.
//
// Example:
//
//	chain {
//	  depth   = depth.robots
//	  workers = 4
//	}
//	codes = ["029A", "980A"]
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// Depths of the two questions of the puzzle, available as depth.short and
// depth.robots in configuration files.
const (
	ShortDepth  = 2
	RobotsDepth = 25
)

// Config is the configuration of one run.
type Config struct {
	Depth     int
	Workers   int
	Codes     []string
	LogLevel  string
	LogFormat string
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Depth:     ShortDepth,
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks c for invalid values.
func (c Config) Validate() error {
	var errs []error
	if c.Depth < 0 {
		errs = append(errs, fmt.Errorf("invalid depth %d: must not be negative", c.Depth))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("invalid workers %d: must be at least 1", c.Workers))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat))
	}
	return errors.Join(errs...)
}
