package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	command := "run"
	args := []string{}
	if len(os.Args) >= 2 {
		command = os.Args[1]
		args = os.Args[2:]
	}
	// Bare flags belong to the default command
	if len(command) > 1 && command[0] == '-' && command != "-h" && command != "--help" {
		command = "run"
		args = os.Args[1:]
	}

	// Dispatch to subcommand
	var err error
	switch command {
	case "run":
		err = runPipeline(ctx, args)
	case "inspect":
		err = runInspect(ctx, args)
	case "package":
		err = runPackage(ctx, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		stop()
		os.Exit(1)
	}
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func printUsage() {
	fmt.Println(`binprobe - Package a sample script and inspect the resulting binary

Usage:
  binprobe [command] [options]

Commands:
  run       Generate, package and inspect the sample (default)
  inspect   Extract strings and disassemble an existing binary
  package   Package a source file and print the binary path

Use "binprobe <command> --help" for more information about a command.`)
}
