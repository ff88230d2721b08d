package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/ctxlog"
	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/runner"
	"github.com/go-ricrob/keypadsolver/solver"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readCodes(r io.Reader) ([][]keypad.Button, error) {
	var codes [][]keypad.Button
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		code, err := keypad.ParseCode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		codes = append(codes, code)
	}
	return codes, scanner.Err()
}

func loadCodes(cfg *cliConfig) ([][]keypad.Button, error) {
	var codes [][]keypad.Button
	for _, s := range cfg.Codes {
		code, err := keypad.ParseCode(s)
		if err != nil {
			return nil, fmt.Errorf("config code %q: %w", s, err)
		}
		codes = append(codes, code)
	}
	if cfg.CodesPath == "" {
		return codes, nil
	}

	f, err := os.Open(cfg.CodesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fileCodes, err := readCodes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.CodesPath, err)
	}
	return append(codes, fileCodes...), nil
}

func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	codes, err := loadCodes(cfg)
	if err != nil {
		return err
	}
	logger.Debug("Codes loaded.", "count", len(codes), "depth", cfg.Depth, "workers", cfg.Workers)

	chain, err := solver.New(cfg.Depth)
	if err != nil {
		return err
	}
	result, err := runner.New(chain, runner.WithWorkers(cfg.Workers)).Run(ctx, codes)
	if err != nil {
		return err
	}

	for i, e := range result.Entries {
		if e.Err != nil {
			continue
		}
		fmt.Fprintf(outW, "%s: %d * %d = %d\n", e.Code, e.Cost, e.Value, e.Complexity)
		if cfg.Show {
			presses, err := chain.Presses(codes[i])
			if err != nil {
				return err
			}
			fmt.Fprintf(outW, "  %s\n", keypad.Format(presses))
		}
	}
	fmt.Fprintf(outW, "The sum of the complexities is %d.\n", result.Sum())
	return result.Err()
}
