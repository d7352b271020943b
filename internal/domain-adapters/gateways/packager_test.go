package gateways

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ochairo/binprobe/internal/domain/entities"
)

// fakePyInstaller mimics pyinstaller: it records its arguments and writes
// dist/<name> into the working directory
const fakePyInstaller = `echo "$@" > "$(pwd)/args.txt"
name=$(basename "$1" .py)
mkdir -p dist
printf 'packaged' > "dist/$name"`

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.py")
	if err := os.WriteFile(path, []byte(entities.DefaultSampleContent), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDistConvention(t *testing.T) {
	tests := []struct {
		name    string
		distDir string
		source  string
		want    string
	}{
		{"python script", "dist", "/work/test.py", "/work/dist/test"},
		{"default dist dir", "", "/work/test.py", "/work/dist/test"},
		{"last extension only", "dist", "/work/app.v2.py", "/work/dist/app.v2"},
		{"no extension", "dist", "/work/tool", "/work/dist/tool"},
		{"dotfile", "dist", "/work/.hidden", "/work/dist/.hidden"},
		{"custom dist dir", "build/out", "/work/test.py", "/work/build/out/test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistConvention(tt.distDir)(filepath.FromSlash(tt.source))
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("DistConvention(%q)(%q) = %q, want %q", tt.distDir, tt.source, got, tt.want)
			}
		})
	}
}

func TestPackager_Package_ReturnsConventionalPath(t *testing.T) {
	tool := fakeTool(t, "pyinstaller", fakePyInstaller)
	source := writeSource(t)
	packager := NewPackager(NewProcessRunner(0, nil), entities.PackagerConfig{Tool: tool})

	binary, err := packager.Package(context.Background(), source)
	if err != nil {
		t.Fatalf("Package() error = %v", err)
	}

	want := filepath.Join(filepath.Dir(source), "dist", "test")
	if binary != want {
		t.Errorf("Package() = %q, want %q", binary, want)
	}

	args, err := os.ReadFile(filepath.Join(filepath.Dir(source), "args.txt"))
	if err != nil {
		t.Fatalf("fake tool did not record args: %v", err)
	}
	if got := strings.TrimSpace(string(args)); got != source+" --onefile --windowed" {
		t.Errorf("tool args = %q, want %q", got, source+" --onefile --windowed")
	}
}

func TestPackager_Package_MissingOutput(t *testing.T) {
	tool := fakeTool(t, "pyinstaller", "exit 0")
	source := writeSource(t)
	packager := NewPackager(NewProcessRunner(0, nil), entities.PackagerConfig{Tool: tool})

	binary, err := packager.Package(context.Background(), source)

	var missing *entities.MissingOutputError
	if !errors.As(err, &missing) {
		t.Fatalf("Package() error = %v, want *entities.MissingOutputError", err)
	}
	if binary != "" {
		t.Errorf("Package() returned path %q on failure", binary)
	}
	if missing.Path != filepath.Join(filepath.Dir(source), "dist", "test") {
		t.Errorf("MissingOutputError.Path = %q", missing.Path)
	}
}

func TestPackager_Package_DirectoryIsNotABinary(t *testing.T) {
	tool := fakeTool(t, "pyinstaller", "mkdir -p dist/test")
	source := writeSource(t)
	packager := NewPackager(NewProcessRunner(0, nil), entities.PackagerConfig{Tool: tool})

	_, err := packager.Package(context.Background(), source)

	var missing *entities.MissingOutputError
	if !errors.As(err, &missing) {
		t.Fatalf("Package() error = %v, want *entities.MissingOutputError", err)
	}
}

func TestPackager_Package_ToolFails(t *testing.T) {
	tool := fakeTool(t, "pyinstaller", "echo 'Script file does not exist' >&2; exit 1")
	source := writeSource(t)
	packager := NewPackager(NewProcessRunner(0, nil), entities.PackagerConfig{Tool: tool})

	_, err := packager.Package(context.Background(), source)

	var invocation *entities.ToolInvocationError
	if !errors.As(err, &invocation) {
		t.Fatalf("Package() error = %v, want *entities.ToolInvocationError", err)
	}
	var exitErr *entities.NonZeroExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode != 1 {
		t.Errorf("Package() error = %v, want wrapped exit code 1", err)
	}
	if !strings.Contains(err.Error(), "Script file does not exist") {
		t.Errorf("Package() error = %v, want tool stderr", err)
	}
}

func TestPackager_Package_Timeout(t *testing.T) {
	tool := fakeTool(t, "pyinstaller", "sleep 3")
	source := writeSource(t)
	packager := NewPackager(NewProcessRunner(0, nil), entities.PackagerConfig{Tool: tool},
		WithPackagerTimeout(100*time.Millisecond))

	start := time.Now()
	_, err := packager.Package(context.Background(), source)

	var invocation *entities.ToolInvocationError
	if !errors.As(err, &invocation) {
		t.Fatalf("Package() error = %v, want *entities.ToolInvocationError", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("Package() error = %v, want timeout", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Package() returned after %v, want well under 3s", elapsed)
	}
}

func TestPackager_Package_ToolMissing(t *testing.T) {
	source := writeSource(t)
	packager := NewPackager(NewProcessRunner(0, nil), entities.PackagerConfig{Tool: "binprobe-no-such-pyinstaller"})

	_, err := packager.Package(context.Background(), source)

	var invocation *entities.ToolInvocationError
	if !errors.As(err, &invocation) {
		t.Fatalf("Package() error = %v, want *entities.ToolInvocationError", err)
	}
}

func TestPackager_Package_CustomConvention(t *testing.T) {
	outDir := t.TempDir()
	want := filepath.Join(outDir, "custom-binary")
	tool := fakeTool(t, "pyinstaller", "printf 'packaged' > '"+want+"'")
	source := writeSource(t)

	packager := NewPackager(NewProcessRunner(0, nil), entities.PackagerConfig{Tool: tool},
		WithOutputConvention(func(string) string { return want }))

	binary, err := packager.Package(context.Background(), source)
	if err != nil {
		t.Fatalf("Package() error = %v", err)
	}
	if binary != want {
		t.Errorf("Package() = %q, want %q", binary, want)
	}
}
