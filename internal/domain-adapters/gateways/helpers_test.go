package gateways

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeTool writes an executable shell script standing in for an external tool
func fakeTool(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	path := filepath.Join(t.TempDir(), name)
	//nolint:gosec // G306: Test executable script needs 0700 permissions
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0700); err != nil {
		t.Fatalf("Failed to create fake %s: %v", name, err)
	}
	return path
}

// requireTool skips the test when the named tool is not installed
func requireTool(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not found on PATH", name)
	}
	return path
}
