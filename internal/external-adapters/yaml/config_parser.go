// Package yaml provides YAML-based pipeline configuration parsing.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no
// configuration path is given
const DefaultConfigFile = "binprobe.yml"

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	Sample         yamlSample   `yaml:"sample"`
	Packager       yamlPackager `yaml:"packager"`
	Strings        yamlTool     `yaml:"strings"`
	Disassembler   yamlTool     `yaml:"disassembler"`
	TimeoutMinutes int          `yaml:"timeout_minutes"`
	Verify         yamlVerify   `yaml:"verify"`
	Log            yamlLog      `yaml:"log"`
}

type yamlSample struct {
	Dir     string `yaml:"dir"`
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

type yamlPackager struct {
	Tool           string   `yaml:"tool"`
	Flags          []string `yaml:"flags"`
	DistDir        string   `yaml:"dist_dir"`
	TimeoutMinutes int      `yaml:"timeout_minutes"`
}

type yamlTool struct {
	Tool  string   `yaml:"tool"`
	Flags []string `yaml:"flags"`
}

type yamlVerify struct {
	SHA256    string `yaml:"sha256"`
	Keyring   string `yaml:"keyring"`
	Signature string `yaml:"signature"`
}

type yamlLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConfigParser parses YAML pipeline configuration
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// Load returns the configuration at path. An empty path tries
// DefaultConfigFile and falls back to defaults when it does not exist;
// an explicit path must exist.
func (p *ConfigParser) Load(path string) (entities.Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); errors.Is(err, os.ErrNotExist) {
			return entities.DefaultConfig(), nil
		}
		path = DefaultConfigFile
	}
	return p.ParseFile(path)
}

// ParseFile parses a YAML configuration file
func (p *ConfigParser) ParseFile(filePath string) (entities.Config, error) {
	//nolint:gosec // G304: filePath is the user-selected configuration file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return entities.Config{}, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes over the default configuration.
// Unknown keys are rejected.
func (p *ConfigParser) Parse(data []byte) (entities.Config, error) {
	var raw yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return entities.Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.TimeoutMinutes < 0 {
		return entities.Config{}, fmt.Errorf("timeout_minutes must not be negative")
	}
	if raw.Packager.TimeoutMinutes < 0 {
		return entities.Config{}, fmt.Errorf("packager.timeout_minutes must not be negative")
	}

	cfg := entities.DefaultConfig()
	mergeSample(&cfg.Sample, raw.Sample)
	mergePackager(&cfg.Packager, raw.Packager)
	mergeTool(&cfg.Strings, raw.Strings)
	mergeTool(&cfg.Disassembler, raw.Disassembler)
	cfg.TimeoutMinutes = raw.TimeoutMinutes
	cfg.Verify = entities.VerifyConfig{
		SHA256:    raw.Verify.SHA256,
		Keyring:   raw.Verify.Keyring,
		Signature: raw.Verify.Signature,
	}
	mergeString(&cfg.Log.Level, raw.Log.Level)
	mergeString(&cfg.Log.Format, raw.Log.Format)

	if (cfg.Verify.Keyring == "") != (cfg.Verify.Signature == "") {
		return entities.Config{}, fmt.Errorf("verify.keyring and verify.signature must be set together")
	}

	return cfg, nil
}

func mergeSample(dst *entities.SampleConfig, src yamlSample) {
	mergeString(&dst.Dir, src.Dir)
	mergeString(&dst.Name, src.Name)
	mergeString(&dst.Content, src.Content)
}

func mergePackager(dst *entities.PackagerConfig, src yamlPackager) {
	mergeString(&dst.Tool, src.Tool)
	mergeString(&dst.DistDir, src.DistDir)
	dst.TimeoutMinutes = src.TimeoutMinutes
	if src.Flags != nil {
		dst.Flags = src.Flags
	}
}

func mergeTool(dst *entities.ToolConfig, src yamlTool) {
	mergeString(&dst.Tool, src.Tool)
	if src.Flags != nil {
		dst.Flags = src.Flags
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
