package config

import (
	"flag"
	"strings"
)

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagProfile   = flag.String("profile", "", "GL context profile: core or es")
	flagVertex    = flag.String("vertex", "", "Vertex shader source id")
	flagFragment  = flag.String("fragment", "", "Fragment shader source id")
	flagDirs      = flag.String("dir", "", "Comma-separated shader source directories")
	flagDocument  = flag.String("document", "", "HTML document holding shader script elements")
	flagDialog    = flag.Bool("dialog", false, "Show build failures in a message box")
	flagNoBuiltin = flag.Bool("no-builtin", false, "Do not serve the embedded shaders")
	flagPrint     = flag.Bool("print", false, "Print preprocessed sources instead of building")
	flagES        = flag.Bool("es", false, "With -print, preprocess for a GLSL ES 3.0 context")
	flagInit      = flag.String("init-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// PrintOnly reports whether -print was given.
func PrintOnly() bool {
	return *flagPrint
}

// ForceES reports whether -es was given.
func ForceES() bool {
	return *flagES
}

// InitPath returns the -init-config target, if any.
func InitPath() string {
	return *flagInit
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagProfile != "" {
		cfg.Context.Profile = *flagProfile
		if *flagProfile == "core" {
			cfg.Context.Major, cfg.Context.Minor = 4, 1
		}
	}
	if *flagVertex != "" {
		cfg.Program.Vertex = *flagVertex
	}
	if *flagFragment != "" {
		cfg.Program.Fragment = *flagFragment
	}
	if *flagDirs != "" {
		for _, dir := range strings.Split(*flagDirs, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				cfg.Sources.Dirs = append(cfg.Sources.Dirs, dir)
			}
		}
	}
	if *flagDocument != "" {
		cfg.Sources.Document = *flagDocument
	}
	if *flagDialog {
		cfg.Report.Dialog = true
	}
	if *flagNoBuiltin {
		cfg.Sources.Builtin = false
	}
}
