// Package entities defines core domain models and data structures.
package entities

// SourceFile is the generated sample script handed to the packager
type SourceFile struct {
	Path    string
	Content string
}

// Artifact represents a packaged binary under inspection
type Artifact struct {
	Name   string
	Path   string
	Type   string // "binary"
	Size   int64
	SHA256 string
	Format string // "elf", "macho", "pe", "unknown"
	Arch   string
}
