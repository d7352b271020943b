// Package gateways provides adapter implementations for the external tools
// the inspection pipeline drives.
package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/ochairo/binprobe/internal/domain/interfaces"
	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

// waitDelay bounds how long Run waits for output pipes after the tool
// has been killed
const waitDelay = time.Second

// ProcessRunner runs external tools synchronously and captures their output
type ProcessRunner struct {
	defaultTimeout time.Duration
	logger         interfaces.Logger
}

// NewProcessRunner creates a process runner. A zero timeout lets each
// process run until it exits.
func NewProcessRunner(defaultTimeout time.Duration, logger interfaces.Logger) *ProcessRunner {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ProcessRunner{
		defaultTimeout: defaultTimeout,
		logger:         logger,
	}
}

// Run executes the requested process and blocks until it exits.
// Start failures and timeouts are reported with ExitCode -1.
func (r *ProcessRunner) Run(ctx context.Context, req gateways.RunRequest) *gateways.RunResult {
	startTime := time.Now()
	result := &gateways.RunResult{}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = r.defaultTimeout
	}

	execCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	//nolint:gosec // G204: tool name and arguments come from pipeline configuration
	cmd := exec.CommandContext(execCtx, req.Name, req.Args...)
	killProcessGroup(cmd)
	cmd.WaitDelay = waitDelay

	if req.WorkingDir != "" {
		cmd.Dir = req.WorkingDir
	}

	if len(req.Env) > 0 {
		cmd.Env = append(os.Environ(), envList(req.Env)...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	description := req.Description
	if description == "" {
		description = req.Name
	}
	r.logger.Debug("running tool",
		interfaces.F("step", description),
		interfaces.F("tool", req.Name),
		interfaces.F("args", req.Args),
	)

	err := cmd.Run()
	result.Duration = time.Since(startTime)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		result.Error = err
		var exitErr *exec.ExitError
		//nolint:gocritic // ifElseChain: checking different error types, not suitable for switch
		if errors.As(err, &exitErr) && execCtx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
		} else if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			result.Error = fmt.Errorf("%s timed out after %v", req.Name, timeout)
			result.ExitCode = -1
		} else {
			result.ExitCode = -1
		}
		r.logger.Debug("tool failed",
			interfaces.F("step", description),
			interfaces.F("exit_code", result.ExitCode),
			interfaces.F("duration", result.Duration),
		)
		return result
	}

	result.Success = true
	result.ExitCode = 0
	r.logger.Debug("tool finished",
		interfaces.F("step", description),
		interfaces.F("duration", result.Duration),
	)
	return result
}

// envList flattens extra environment variables in a stable order
func envList(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, key := range keys {
		list = append(list, fmt.Sprintf("%s=%s", key, env[key]))
	}
	return list
}
