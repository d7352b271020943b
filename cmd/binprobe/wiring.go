package main

import (
	"errors"
	"os"
	"time"

	"github.com/ochairo/binprobe/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/binprobe/internal/domain-orchestrators"
	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/services"
	"github.com/ochairo/binprobe/internal/external-adapters/envconfig"
	"github.com/ochairo/binprobe/internal/external-adapters/logging"
	"github.com/ochairo/binprobe/internal/external-adapters/yaml"
)

// loadConfig reads the YAML configuration, then applies env overrides
func loadConfig(path string) (entities.Config, error) {
	cfg, err := yaml.NewConfigParser().Load(path)
	if err != nil {
		return entities.Config{}, err
	}
	return envconfig.Apply(cfg), nil
}

// components holds the wired pipeline
type components struct {
	packager     *gateways.Packager
	orchestrator *orchestrators.InspectionOrchestrator
}

func wire(cfg entities.Config) *components {
	logger := logging.New(os.Stderr, cfg.Log)
	timeout := time.Duration(cfg.TimeoutMinutes) * time.Minute

	runner := gateways.NewProcessRunner(timeout, logger)
	packagerOpts := []gateways.PackagerOption{gateways.WithPackagerLogger(logger)}
	if cfg.Packager.TimeoutMinutes > 0 {
		packagerOpts = append(packagerOpts,
			gateways.WithPackagerTimeout(time.Duration(cfg.Packager.TimeoutMinutes)*time.Minute))
	}
	packager := gateways.NewPackager(runner, cfg.Packager, packagerOpts...)

	orch := orchestrators.NewInspectionOrchestrator(orchestrators.InspectionOrchestratorDeps{
		Generator:    gateways.NewSourceGenerator(cfg.Sample),
		Packager:     packager,
		Inspector:    gateways.NewArtifactInspector(),
		Integrity:    services.NewIntegrityService(gateways.NewIntegrityVerifier(), cfg.Verify),
		Extractor:    gateways.NewStringExtractor(runner, cfg.Strings, timeout),
		Disassembler: gateways.NewDisassembler(runner, cfg.Disassembler, timeout),
		Logger:       logger,
	})

	return &components{
		packager:     packager,
		orchestrator: orch,
	}
}

// exitCode maps a pipeline error to the process exit status: a failing
// disassembler's own status is passed through, anything else is 1
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var invocation *entities.ToolInvocationError
	if errors.As(err, &invocation) {
		return 1
	}

	var exitErr *entities.NonZeroExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode > 0 && exitErr.ExitCode < 256 {
		return exitErr.ExitCode
	}
	return 1
}
