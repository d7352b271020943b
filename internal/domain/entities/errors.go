package entities

import (
	"fmt"
	"strings"
)

// WriteError reports a failure to write the generated sample source
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// MissingOutputError reports that the packaging tool left nothing at the
// conventional output path
type MissingOutputError struct {
	Path string
}

func (e *MissingOutputError) Error() string {
	return fmt.Sprintf("compiled binary not found at expected path: %s", e.Path)
}

// ToolInvocationError reports an external tool that could not be run or
// whose output could not be used
type ToolInvocationError struct {
	Tool string
	Args []string
	Err  error
}

func (e *ToolInvocationError) Error() string {
	cmdline := e.Tool
	if len(e.Args) > 0 {
		cmdline += " " + strings.Join(e.Args, " ")
	}
	return fmt.Sprintf("failed to run %s: %v", cmdline, e.Err)
}

func (e *ToolInvocationError) Unwrap() error {
	return e.Err
}

// NonZeroExitError reports an external tool that ran but exited non-zero.
// Stderr holds the tool's diagnostic output verbatim.
type NonZeroExitError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *NonZeroExitError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, stderr)
}
