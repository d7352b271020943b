package entities

// Default values for the sample pipeline
const (
	DefaultSampleName    = "test.py"
	DefaultSampleContent = "print('Hello World!')"
	DefaultPackagerTool  = "pyinstaller"
	DefaultDistDir       = "dist"
	DefaultStringsTool   = "strings"
	DefaultObjdumpTool   = "objdump"
)

// Config holds the complete pipeline configuration
type Config struct {
	Sample         SampleConfig
	Packager       PackagerConfig
	Strings        ToolConfig
	Disassembler   ToolConfig
	TimeoutMinutes int // 0 disables the per-tool timeout
	Verify         VerifyConfig
	Log            LogConfig
}

// SampleConfig describes the generated sample source
type SampleConfig struct {
	Dir     string // empty means the directory of the running executable
	Name    string
	Content string
}

// PackagerConfig describes the packaging tool invocation
type PackagerConfig struct {
	Tool           string
	Flags          []string
	DistDir        string
	TimeoutMinutes int // 0 falls back to Config.TimeoutMinutes
}

// ToolConfig describes an inspection tool invocation
type ToolConfig struct {
	Tool  string
	Flags []string
}

// VerifyConfig describes the optional integrity gates
type VerifyConfig struct {
	SHA256    string
	Keyring   string
	Signature string
}

// LogConfig selects log level and handler format
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		Sample: SampleConfig{
			Name:    DefaultSampleName,
			Content: DefaultSampleContent,
		},
		Packager: PackagerConfig{
			Tool:    DefaultPackagerTool,
			Flags:   []string{"--onefile", "--windowed"},
			DistDir: DefaultDistDir,
		},
		Strings: ToolConfig{
			Tool: DefaultStringsTool,
		},
		Disassembler: ToolConfig{
			Tool:  DefaultObjdumpTool,
			Flags: []string{"-d"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SignatureCheckEnabled reports whether both keyring and signature are set
func (v VerifyConfig) SignatureCheckEnabled() bool {
	return v.Keyring != "" && v.Signature != ""
}
