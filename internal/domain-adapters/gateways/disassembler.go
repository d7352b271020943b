package gateways

import (
	"context"
	"time"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

// Disassembler runs an objdump(1) compatible tool on a binary
type Disassembler struct {
	runner  gateways.ProcessRunner
	tool    string
	flags   []string
	timeout time.Duration
}

// NewDisassembler creates a new disassembler. With no flags configured it
// requests a full disassembly with -d.
func NewDisassembler(runner gateways.ProcessRunner, config entities.ToolConfig, timeout time.Duration) *Disassembler {
	tool := config.Tool
	if tool == "" {
		tool = entities.DefaultObjdumpTool
	}
	flags := config.Flags
	if len(flags) == 0 {
		flags = []string{"-d"}
	}
	return &Disassembler{
		runner:  runner,
		tool:    tool,
		flags:   flags,
		timeout: timeout,
	}
}

// Disassemble returns the tool's stdout. A non-zero exit is reported as
// *entities.NonZeroExitError carrying the tool's stderr.
func (d *Disassembler) Disassemble(ctx context.Context, binaryPath string) (string, error) {
	req := gateways.RunRequest{
		Name:        d.tool,
		Args:        append(append([]string{}, d.flags...), binaryPath),
		Timeout:     d.timeout,
		Description: "disassemble",
	}

	result := d.runner.Run(ctx, req)
	if err := runError(req, result); err != nil {
		return "", err
	}

	return result.Stdout, nil
}
