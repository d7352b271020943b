package gateways

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

func TestProcessRunner_Run_Success(t *testing.T) {
	runner := NewProcessRunner(0, nil)

	result := runner.Run(context.Background(), gateways.RunRequest{
		Name: "/bin/sh",
		Args: []string{"-c", "echo 'Hello, World!'; echo warn >&2"},
	})

	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}
	if result.ExitCode != 0 {
		t.Errorf("Run() exit code = %d, want 0", result.ExitCode)
	}
	if result.Stdout != "Hello, World!\n" {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, "Hello, World!\n")
	}
	if result.Stderr != "warn\n" {
		t.Errorf("Run() stderr = %q, want %q", result.Stderr, "warn\n")
	}
}

func TestProcessRunner_Run_ExitCode(t *testing.T) {
	runner := NewProcessRunner(0, nil)

	result := runner.Run(context.Background(), gateways.RunRequest{
		Name: "/bin/sh",
		Args: []string{"-c", "echo boom >&2; exit 42"},
	})

	if result.Success {
		t.Fatal("Run() should have failed")
	}
	if result.ExitCode != 42 {
		t.Errorf("Run() exit code = %d, want 42", result.ExitCode)
	}
	if result.Stderr != "boom\n" {
		t.Errorf("Run() stderr = %q, want %q", result.Stderr, "boom\n")
	}
}

func TestProcessRunner_Run_MissingTool(t *testing.T) {
	runner := NewProcessRunner(0, nil)

	result := runner.Run(context.Background(), gateways.RunRequest{
		Name: "binprobe-no-such-tool",
	})

	if result.Success {
		t.Fatal("Run() should have failed")
	}
	if result.ExitCode != -1 {
		t.Errorf("Run() exit code = %d, want -1", result.ExitCode)
	}
	if result.Error == nil {
		t.Error("Run() should have returned an error")
	}
}

func TestProcessRunner_Run_Environment(t *testing.T) {
	runner := NewProcessRunner(0, nil)

	result := runner.Run(context.Background(), gateways.RunRequest{
		Name: "/bin/sh",
		Args: []string{"-c", "echo $BINPROBE_TEST_VAR"},
		Env:  map[string]string{"BINPROBE_TEST_VAR": "test_value"},
	})

	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}
	if result.Stdout != "test_value\n" {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, "test_value\n")
	}
}

func TestProcessRunner_Run_WorkingDirectory(t *testing.T) {
	runner := NewProcessRunner(0, nil)
	tempDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tempDir, "test.py"), []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	result := runner.Run(context.Background(), gateways.RunRequest{
		Name:       "/bin/sh",
		Args:       []string{"-c", "ls test.py"},
		WorkingDir: tempDir,
	})

	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}
	if result.Stdout != "test.py\n" {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, "test.py\n")
	}
}

func TestProcessRunner_Run_Timeout(t *testing.T) {
	runner := NewProcessRunner(0, nil)

	result := runner.Run(context.Background(), gateways.RunRequest{
		Name:    "/bin/sh",
		Args:    []string{"-c", "sleep 5"},
		Timeout: 100 * time.Millisecond,
	})

	if result.Success {
		t.Fatal("Run() should have timed out")
	}
	if result.ExitCode != -1 {
		t.Errorf("Run() exit code = %d, want -1", result.ExitCode)
	}
	if result.Error == nil {
		t.Error("Run() should have returned an error")
	}
}

func TestProcessRunner_Run_TimeoutKillsChildren(t *testing.T) {
	tool := fakeTool(t, "slow-tool", "sleep 3; echo done")
	runner := NewProcessRunner(0, nil)

	start := time.Now()
	result := runner.Run(context.Background(), gateways.RunRequest{
		Name:    tool,
		Timeout: 100 * time.Millisecond,
	})
	elapsed := time.Since(start)

	if elapsed > 2*time.Second {
		t.Errorf("Run() returned after %v, want well under 3s", elapsed)
	}
	if result.ExitCode != -1 {
		t.Errorf("Run() exit code = %d, want -1", result.ExitCode)
	}
	if result.Error == nil || !strings.Contains(result.Error.Error(), "timed out") {
		t.Errorf("Run() error = %v, want timeout", result.Error)
	}
}

func TestProcessRunner_Run_CancelKillsChildren(t *testing.T) {
	tool := fakeTool(t, "slow-tool", "sleep 3; echo done")
	runner := NewProcessRunner(0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	result := runner.Run(ctx, gateways.RunRequest{Name: tool})
	elapsed := time.Since(start)

	if elapsed > 2*time.Second {
		t.Errorf("Run() returned after %v, want well under 3s", elapsed)
	}
	if result.Success {
		t.Error("Run() should have failed after cancellation")
	}
	if result.ExitCode != -1 {
		t.Errorf("Run() exit code = %d, want -1", result.ExitCode)
	}
}

func TestEnvList_Sorted(t *testing.T) {
	got := envList(map[string]string{"B": "2", "A": "1"})

	if len(got) != 2 || got[0] != "A=1" || got[1] != "B=2" {
		t.Errorf("envList() = %v, want [A=1 B=2]", got)
	}
}
