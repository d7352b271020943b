package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/binprobe/internal/domain/services"
)

func runPipeline(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "Path to configuration file (default: ./binprobe.yml if present)")
		dir        = fs.String("dir", "", "Directory for the sample source (default: next to the binprobe executable)")
		format     = fs.String("format", services.FormatText, "Output format: text or yaml")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: binprobe run [options]

Write the sample script, package it into a standalone executable, then
print the strings and the disassembly of the result.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  binprobe
  binprobe run --dir /tmp/probe
  binprobe run --config binprobe.yml --format yaml
`)
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dir != "" {
		cfg.Sample.Dir = *dir
	}

	c := wire(cfg)
	report, err := c.orchestrator.Run(ctx)
	if err != nil {
		return err
	}

	return services.WriteReport(os.Stdout, report, *format)
}
