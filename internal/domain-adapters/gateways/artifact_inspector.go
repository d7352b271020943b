package gateways

import (
	"context"
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/binprobe/internal/domain/entities"
)

// Binary container formats reported by the inspector
const (
	FormatELF     = "elf"
	FormatMachO   = "macho"
	FormatPE      = "pe"
	FormatUnknown = "unknown"
)

// artifactInspector describes a packaged binary using debug/elf,
// debug/macho and debug/pe; nothing is executed
type artifactInspector struct {
	checksums *checksumVerifier
}

// NewArtifactInspector creates a new artifact inspector
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewArtifactInspector() *artifactInspector {
	return &artifactInspector{checksums: NewChecksumVerifier()}
}

// Describe returns size, digest, format and architecture of the binary.
// A format it cannot parse is reported as FormatUnknown, not as an error.
func (i *artifactInspector) Describe(_ context.Context, binaryPath string) (*entities.Artifact, error) {
	info, err := os.Stat(binaryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat binary: %w", err)
	}

	sum, err := i.checksums.CalculateChecksum(binaryPath)
	if err != nil {
		return nil, err
	}

	format, arch := detectFormat(binaryPath)

	return &entities.Artifact{
		Name:   filepath.Base(binaryPath),
		Path:   binaryPath,
		Type:   "binary",
		Size:   info.Size(),
		SHA256: sum,
		Format: format,
		Arch:   arch,
	}, nil
}

// detectFormat tries each container parser in turn
func detectFormat(path string) (string, string) {
	if f, err := elf.Open(path); err == nil {
		//nolint:errcheck // Defer close on read-only file
		defer f.Close()
		return FormatELF, f.Machine.String()
	}

	if f, err := macho.Open(path); err == nil {
		//nolint:errcheck // Defer close on read-only file
		defer f.Close()
		return FormatMachO, f.Cpu.String()
	}

	if fat, err := macho.OpenFat(path); err == nil {
		//nolint:errcheck // Defer close on read-only file
		defer fat.Close()
		if len(fat.Arches) > 0 {
			return FormatMachO, fat.Arches[0].Cpu.String()
		}
		return FormatMachO, ""
	}

	if f, err := pe.Open(path); err == nil {
		//nolint:errcheck // Defer close on read-only file
		defer f.Close()
		return FormatPE, peMachine(f.Machine)
	}

	return FormatUnknown, ""
}

func peMachine(machine uint16) string {
	switch machine {
	case pe.IMAGE_FILE_MACHINE_AMD64:
		return "amd64"
	case pe.IMAGE_FILE_MACHINE_I386:
		return "386"
	case pe.IMAGE_FILE_MACHINE_ARM64:
		return "arm64"
	default:
		return fmt.Sprintf("0x%04x", machine)
	}
}
