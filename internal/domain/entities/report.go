package entities

import "time"

// InspectionReport is the outcome of one pipeline run
type InspectionReport struct {
	RunID       string        `yaml:"run_id"`
	Source      SourceFile    `yaml:"source"`
	Artifact    Artifact      `yaml:"artifact"`
	Verified    bool          `yaml:"signature_verified"`
	Strings     string        `yaml:"strings"`
	Disassembly string        `yaml:"disassembly"`
	Durations   StepDurations `yaml:"durations"`
}

// StepDurations records how long each pipeline step took
type StepDurations struct {
	Generate    time.Duration `yaml:"generate"`
	Package     time.Duration `yaml:"package"`
	Strings     time.Duration `yaml:"strings"`
	Disassemble time.Duration `yaml:"disassemble"`
	Total       time.Duration `yaml:"total"`
}
