package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/binprobe/internal/domain/entities"
)

// SourceGenerator writes the fixed sample script the pipeline packages
type SourceGenerator struct {
	dir     string
	name    string
	content string
}

// NewSourceGenerator creates a generator from the sample configuration.
// An empty directory resolves to the directory of the running executable.
func NewSourceGenerator(config entities.SampleConfig) *SourceGenerator {
	name := config.Name
	if name == "" {
		name = entities.DefaultSampleName
	}
	content := config.Content
	if content == "" {
		content = entities.DefaultSampleContent
	}
	return &SourceGenerator{
		dir:     config.Dir,
		name:    name,
		content: content,
	}
}

// Generate creates or overwrites the sample file and returns it
func (g *SourceGenerator) Generate(_ context.Context) (*entities.SourceFile, error) {
	dir, err := g.resolveDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, g.name)

	//nolint:gosec // G306: generated script must be readable by the packaging tool
	if err := os.WriteFile(path, []byte(g.content), 0644); err != nil {
		return nil, &entities.WriteError{Path: path, Err: err}
	}

	return &entities.SourceFile{Path: path, Content: g.content}, nil
}

// resolveDir returns the configured directory as an absolute path
func (g *SourceGenerator) resolveDir() (string, error) {
	if g.dir != "" {
		dir, err := filepath.Abs(g.dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve sample directory: %w", err)
		}
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate running executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
