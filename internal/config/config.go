// Package config handles shaderlink configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Context ContextConfig `yaml:"context"`
	Sources SourcesConfig `yaml:"sources"`
	Program ProgramConfig `yaml:"program"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ContextConfig describes the OpenGL context programs are built against.
type ContextConfig struct {
	Profile string `yaml:"profile"` // "core" or "es"
	Major   int    `yaml:"major"`
	Minor   int    `yaml:"minor"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Hidden  bool   `yaml:"hidden"`
}

// SourcesConfig lists where shader sources are looked up.
// Later entries take priority: builtin < dirs < document.
type SourcesConfig struct {
	Builtin  bool     `yaml:"builtin"`
	Dirs     []string `yaml:"dirs"`
	Document string   `yaml:"document"` // HTML page with shader <script> elements
}

// ProgramConfig names the shader pair to build.
type ProgramConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Built-in shader pairs served from the embedded sources.
var (
	BuiltinES   = ProgramConfig{Vertex: "basic.vert", Fragment: "basic.frag"}
	BuiltinCore = ProgramConfig{Vertex: "basic330.vert", Fragment: "basic330.frag"}
)

// BuiltinProgram returns the built-in pair that compiles on a context of the
// given profile. Core profiles reject unversioned sources, so they get the
// pair pinned to "#version 330 core".
func BuiltinProgram(profile string) ProgramConfig {
	if profile == "core" {
		return BuiltinCore
	}
	return BuiltinES
}

// matchBuiltinProgram swaps a built-in pair for the one that fits the
// configured profile. User-chosen ids are left alone.
func (c *Config) matchBuiltinProgram() {
	if c.Program == BuiltinES || c.Program == BuiltinCore {
		c.Program = BuiltinProgram(c.Context.Profile)
	}
}

// ReportConfig controls how build failures are surfaced.
type ReportConfig struct {
	Dialog bool `yaml:"dialog"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Context: ContextConfig{
			Profile: "es",
			Major:   3,
			Minor:   0,
			Width:   64,
			Height:  64,
			Hidden:  true,
		},
		Sources: SourcesConfig{
			Builtin: true,
		},
		Program: BuiltinES,
		Report: ReportConfig{
			Dialog: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
