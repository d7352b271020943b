package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/interfaces"
	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

// OutputConvention computes where the packaging tool leaves its executable
// for a given source file
type OutputConvention func(sourcePath string) string

// DistConvention returns the convention <source_dir>/<distDir>/<base>,
// where base is the source file name with its last extension removed
func DistConvention(distDir string) OutputConvention {
	if distDir == "" {
		distDir = entities.DefaultDistDir
	}
	return func(sourcePath string) string {
		return filepath.Join(filepath.Dir(sourcePath), distDir, stripExtension(filepath.Base(sourcePath)))
	}
}

// stripExtension removes the last extension, keeping dotfiles intact
func stripExtension(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

// Packager drives the external packaging tool
type Packager struct {
	runner     gateways.ProcessRunner
	tool       string
	flags      []string
	convention OutputConvention
	timeout    time.Duration
	logger     interfaces.Logger
}

// PackagerOption customizes a Packager
type PackagerOption func(*Packager)

// WithOutputConvention overrides where the packaged binary is looked for
func WithOutputConvention(convention OutputConvention) PackagerOption {
	return func(p *Packager) {
		p.convention = convention
	}
}

// WithPackagerTimeout bounds a single packaging run
func WithPackagerTimeout(timeout time.Duration) PackagerOption {
	return func(p *Packager) {
		p.timeout = timeout
	}
}

// WithPackagerLogger sets the logger
func WithPackagerLogger(logger interfaces.Logger) PackagerOption {
	return func(p *Packager) {
		p.logger = logger
	}
}

// NewPackager creates a new packager. With no flags configured it
// requests single-file, windowless output.
func NewPackager(runner gateways.ProcessRunner, config entities.PackagerConfig, opts ...PackagerOption) *Packager {
	tool := config.Tool
	if tool == "" {
		tool = entities.DefaultPackagerTool
	}

	flags := config.Flags
	if len(flags) == 0 {
		flags = []string{"--onefile", "--windowed"}
	}

	p := &Packager{
		runner:     runner,
		tool:       tool,
		flags:      flags,
		convention: DistConvention(config.DistDir),
		logger:     &interfaces.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Package runs the packaging tool on sourcePath and returns the path of
// the produced executable. The tool runs inside the source directory so
// its dist/ output lands next to the source.
func (p *Packager) Package(ctx context.Context, sourcePath string) (string, error) {
	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source path: %w", err)
	}

	args := append([]string{absSource}, p.flags...)
	req := gateways.RunRequest{
		Name:        p.tool,
		Args:        args,
		WorkingDir:  filepath.Dir(absSource),
		Timeout:     p.timeout,
		Description: "package",
	}

	result := p.runner.Run(ctx, req)
	if err := invocationError(req, result); err != nil {
		return "", err
	}

	binaryPath := p.convention(absSource)
	info, err := os.Stat(binaryPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", &entities.MissingOutputError{Path: binaryPath}
	}

	p.logger.Info("packaged binary",
		interfaces.F("binary", binaryPath),
		interfaces.F("duration", result.Duration),
	)
	return binaryPath, nil
}
