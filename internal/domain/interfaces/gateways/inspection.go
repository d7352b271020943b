// Package gateways defines the contracts for the external tools the
// pipeline drives.
package gateways

import (
	"context"
	"time"

	"github.com/ochairo/binprobe/internal/domain/entities"
)

// RunRequest describes one external process invocation
type RunRequest struct {
	Name        string
	Args        []string
	WorkingDir  string
	Env         map[string]string
	Timeout     time.Duration // zero means no timeout
	Description string
}

// RunResult contains the captured outcome of one process invocation
type RunResult struct {
	Success  bool
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Error    error
}

// ProcessRunner runs a process to completion and captures its output
type ProcessRunner interface {
	Run(ctx context.Context, req RunRequest) *RunResult
}

// SourceGenerator writes the sample source file
type SourceGenerator interface {
	Generate(ctx context.Context) (*entities.SourceFile, error)
}

// Packager turns a source file into a standalone executable
type Packager interface {
	Package(ctx context.Context, sourcePath string) (string, error)
}

// StringExtractor returns the printable strings found in a binary
type StringExtractor interface {
	ExtractStrings(ctx context.Context, binaryPath string) (string, error)
}

// Disassembler returns the disassembly of a binary
type Disassembler interface {
	Disassemble(ctx context.Context, binaryPath string) (string, error)
}

// ArtifactInspector describes a binary without running it
type ArtifactInspector interface {
	Describe(ctx context.Context, binaryPath string) (*entities.Artifact, error)
}

// IntegrityVerifier gates a binary on its checksum and signature
type IntegrityVerifier interface {
	VerifyChecksum(ctx context.Context, filePath, expectedSum string) error
	VerifySignature(ctx context.Context, filePath, keyringPath, sigPath string) error
}
