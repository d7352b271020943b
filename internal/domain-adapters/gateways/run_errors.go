package gateways

import (
	"errors"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

// runError converts a failed run into a domain error.
// A process that ran and exited non-zero yields *entities.NonZeroExitError;
// anything else (missing tool, signal, timeout) yields
// *entities.ToolInvocationError. A successful run yields nil.
func runError(req gateways.RunRequest, result *gateways.RunResult) error {
	if result.Success {
		return nil
	}

	if result.ExitCode > 0 {
		return &entities.NonZeroExitError{
			Tool:     req.Name,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	cause := result.Error
	if cause == nil {
		cause = errors.New("process did not complete")
	}
	return &entities.ToolInvocationError{Tool: req.Name, Args: req.Args, Err: cause}
}

// invocationError is runError for steps where every failure, including a
// non-zero exit, counts as a tool invocation failure
func invocationError(req gateways.RunRequest, result *gateways.RunResult) error {
	err := runError(req, result)
	if err == nil {
		return nil
	}

	var exitErr *entities.NonZeroExitError
	if errors.As(err, &exitErr) {
		return &entities.ToolInvocationError{Tool: req.Name, Args: req.Args, Err: exitErr}
	}
	return err
}
