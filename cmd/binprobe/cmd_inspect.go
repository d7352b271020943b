package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/binprobe/internal/domain/services"
)

func runInspect(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "Path to configuration file (default: ./binprobe.yml if present)")
		format     = fs.String("format", services.FormatText, "Output format: text or yaml")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: binprobe inspect [options] <binary>

Print the strings and the disassembly of an existing binary.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect requires exactly one binary path")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	c := wire(cfg)
	report, err := c.orchestrator.Inspect(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	return services.WriteReport(os.Stdout, report, *format)
}
