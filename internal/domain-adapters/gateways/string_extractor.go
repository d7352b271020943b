package gateways

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

// StringExtractor runs a strings(1) compatible tool on a binary
type StringExtractor struct {
	runner  gateways.ProcessRunner
	tool    string
	flags   []string
	timeout time.Duration
}

// NewStringExtractor creates a new string extractor
func NewStringExtractor(runner gateways.ProcessRunner, config entities.ToolConfig, timeout time.Duration) *StringExtractor {
	tool := config.Tool
	if tool == "" {
		tool = entities.DefaultStringsTool
	}
	return &StringExtractor{
		runner:  runner,
		tool:    tool,
		flags:   config.Flags,
		timeout: timeout,
	}
}

// ExtractStrings returns the tool's stdout as text.
// Every failure is reported as *entities.ToolInvocationError.
func (e *StringExtractor) ExtractStrings(ctx context.Context, binaryPath string) (string, error) {
	args := append(append([]string{}, e.flags...), binaryPath)
	req := gateways.RunRequest{
		Name:        e.tool,
		Args:        args,
		Timeout:     e.timeout,
		Description: "strings",
	}

	result := e.runner.Run(ctx, req)
	if err := invocationError(req, result); err != nil {
		return "", err
	}

	if !utf8.ValidString(result.Stdout) {
		return "", &entities.ToolInvocationError{
			Tool: e.tool,
			Args: args,
			Err:  errors.New("output is not valid UTF-8"),
		}
	}

	return result.Stdout, nil
}
