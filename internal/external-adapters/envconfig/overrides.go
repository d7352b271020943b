// Package envconfig applies BINPROBE_* environment overrides to a
// pipeline configuration.
package envconfig

import (
	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/xyproto/env/v2"
)

// Recognized environment variables
const (
	Packager       = "BINPROBE_PACKAGER"
	Strings        = "BINPROBE_STRINGS"
	Objdump        = "BINPROBE_OBJDUMP"
	SampleDir      = "BINPROBE_SAMPLE_DIR"
	LogLevel       = "BINPROBE_LOG_LEVEL"
	LogFormat      = "BINPROBE_LOG_FORMAT"
	TimeoutMinutes = "BINPROBE_TIMEOUT_MINUTES"
)

// Apply returns cfg with any set BINPROBE_* variables taking precedence.
// The environment is re-read on every call.
func Apply(cfg entities.Config) entities.Config {
	env.Load()

	cfg.Packager.Tool = env.Str(Packager, cfg.Packager.Tool)
	cfg.Strings.Tool = env.Str(Strings, cfg.Strings.Tool)
	cfg.Disassembler.Tool = env.Str(Objdump, cfg.Disassembler.Tool)
	cfg.Sample.Dir = env.Str(SampleDir, cfg.Sample.Dir)
	cfg.Log.Level = env.Str(LogLevel, cfg.Log.Level)
	cfg.Log.Format = env.Str(LogFormat, cfg.Log.Format)

	if minutes := env.Int(TimeoutMinutes, cfg.TimeoutMinutes); minutes >= 0 {
		cfg.TimeoutMinutes = minutes
	}

	return cfg
}
