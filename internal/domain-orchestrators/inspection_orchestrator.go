// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/interfaces"
	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

// IntegrityChecker applies the configured integrity gates to an artifact
type IntegrityChecker interface {
	CheckArtifact(ctx context.Context, artifact *entities.Artifact) (bool, error)
}

// InspectionOrchestrator runs the generate, package, inspect pipeline
type InspectionOrchestrator struct {
	generator    gateways.SourceGenerator
	packager     gateways.Packager
	inspector    gateways.ArtifactInspector
	integrity    IntegrityChecker
	extractor    gateways.StringExtractor
	disassembler gateways.Disassembler
	logger       interfaces.Logger
	newRunID     func() string
}

// InspectionOrchestratorDeps groups the orchestrator's collaborators.
// Inspector and Integrity are optional.
type InspectionOrchestratorDeps struct {
	Generator    gateways.SourceGenerator
	Packager     gateways.Packager
	Inspector    gateways.ArtifactInspector
	Integrity    IntegrityChecker
	Extractor    gateways.StringExtractor
	Disassembler gateways.Disassembler
	Logger       interfaces.Logger
}

// NewInspectionOrchestrator creates a new inspection orchestrator
func NewInspectionOrchestrator(deps InspectionOrchestratorDeps) *InspectionOrchestrator {
	logger := deps.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &InspectionOrchestrator{
		generator:    deps.Generator,
		packager:     deps.Packager,
		inspector:    deps.Inspector,
		integrity:    deps.Integrity,
		extractor:    deps.Extractor,
		disassembler: deps.Disassembler,
		logger:       logger,
		newRunID:     newULID,
	}
}

// Run executes the complete pipeline. The first failing step aborts the
// run; the partially filled report is returned alongside the error.
func (o *InspectionOrchestrator) Run(ctx context.Context) (*entities.InspectionReport, error) {
	startTime := time.Now()
	report := &entities.InspectionReport{RunID: o.newRunID()}
	logger := o.logger.With(interfaces.F("run_id", report.RunID))

	// Step 1: Generate sample source
	stepStart := time.Now()
	source, err := o.generator.Generate(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to generate sample source: %w", err)
	}
	report.Source = *source
	report.Durations.Generate = time.Since(stepStart)
	logger.Info("sample source written", interfaces.F("path", source.Path))

	// Step 2: Package it into a standalone executable
	stepStart = time.Now()
	binaryPath, err := o.packager.Package(ctx, source.Path)
	if err != nil {
		return report, fmt.Errorf("failed to package sample source: %w", err)
	}
	report.Durations.Package = time.Since(stepStart)

	// Steps 3-4: Inspect the binary
	if err := o.inspect(ctx, logger, binaryPath, report); err != nil {
		return report, err
	}

	report.Durations.Total = time.Since(startTime)
	logger.Info("pipeline finished", interfaces.F("duration", report.Durations.Total))
	return report, nil
}

// Inspect runs the inspection steps against an existing binary
func (o *InspectionOrchestrator) Inspect(ctx context.Context, binaryPath string) (*entities.InspectionReport, error) {
	startTime := time.Now()
	report := &entities.InspectionReport{RunID: o.newRunID()}
	logger := o.logger.With(interfaces.F("run_id", report.RunID))

	if err := o.inspect(ctx, logger, binaryPath, report); err != nil {
		return report, err
	}

	report.Durations.Total = time.Since(startTime)
	logger.Info("inspection finished", interfaces.F("duration", report.Durations.Total))
	return report, nil
}

func (o *InspectionOrchestrator) inspect(ctx context.Context, logger interfaces.Logger, binaryPath string, report *entities.InspectionReport) error {
	report.Artifact = entities.Artifact{Path: binaryPath, Type: "binary"}

	if o.inspector != nil {
		artifact, err := o.inspector.Describe(ctx, binaryPath)
		if err != nil {
			return fmt.Errorf("failed to describe binary: %w", err)
		}
		report.Artifact = *artifact
		logger.Info("binary described",
			interfaces.F("format", artifact.Format),
			interfaces.F("arch", artifact.Arch),
			interfaces.F("sha256", artifact.SHA256),
		)
	}

	if o.integrity != nil {
		verified, err := o.integrity.CheckArtifact(ctx, &report.Artifact)
		if err != nil {
			return fmt.Errorf("failed to verify binary: %w", err)
		}
		report.Verified = verified
	}

	stepStart := time.Now()
	strs, err := o.extractor.ExtractStrings(ctx, binaryPath)
	if err != nil {
		return fmt.Errorf("failed to extract strings: %w", err)
	}
	report.Strings = strs
	report.Durations.Strings = time.Since(stepStart)

	stepStart = time.Now()
	disasm, err := o.disassembler.Disassemble(ctx, binaryPath)
	if err != nil {
		return fmt.Errorf("failed to disassemble binary: %w", err)
	}
	report.Disassembly = disasm
	report.Durations.Disassemble = time.Since(stepStart)

	return nil
}

func newULID() string {
	t := time.Now()
	//nolint:gosec // G404: run identifiers need uniqueness, not secrecy
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
