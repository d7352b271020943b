package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// Report output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// WriteReport renders the report in the requested format.
// The text format prints the strings output followed by the disassembly,
// each terminated by a newline.
func WriteReport(w io.Writer, report *entities.InspectionReport, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		if _, err := fmt.Fprintln(w, report.Strings); err != nil {
			return fmt.Errorf("failed to write strings output: %w", err)
		}
		if _, err := fmt.Fprintln(w, report.Disassembly); err != nil {
			return fmt.Errorf("failed to write disassembly output: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}
