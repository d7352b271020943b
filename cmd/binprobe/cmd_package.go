package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runPackage(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("package", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file (default: ./binprobe.yml if present)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: binprobe package [options] <source>

Package a source file into a standalone executable and print its path.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("package requires exactly one source path")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	binaryPath, err := wire(cfg).packager.Package(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Println(binaryPath)
	return nil
}
