package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Context.Profile != "es" {
		t.Errorf("expected profile es, got %s", cfg.Context.Profile)
	}
	if cfg.Context.Major != 3 || cfg.Context.Minor != 0 {
		t.Errorf("expected context 3.0, got %d.%d", cfg.Context.Major, cfg.Context.Minor)
	}
	if !cfg.Context.Hidden {
		t.Error("expected hidden window by default")
	}
	if !cfg.Sources.Builtin {
		t.Error("expected builtin sources by default")
	}
	if cfg.Program.Vertex != "basic.vert" || cfg.Program.Fragment != "basic.frag" {
		t.Errorf("unexpected default program %+v", cfg.Program)
	}
	if cfg.Report.Dialog {
		t.Error("expected dialog reporting to be off by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "shaderlink.yaml")

	yamlContent := `
context:
  profile: core
  major: 4
  minor: 1
  hidden: false

sources:
  builtin: false
  dirs: ["shaders", "/opt/shaders"]
  document: index.html

program:
  vertex: vertex-shader
  fragment: fragment-shader

report:
  dialog: true

logging:
  level: "debug"
  log_file: "shaderlink.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Context.Profile != "core" || cfg.Context.Major != 4 || cfg.Context.Minor != 1 {
		t.Errorf("unexpected context %+v", cfg.Context)
	}
	if cfg.Context.Hidden {
		t.Error("expected hidden to be false")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Context.Width != 64 {
		t.Errorf("expected default width 64, got %d", cfg.Context.Width)
	}
	if cfg.Sources.Builtin {
		t.Error("expected builtin to be false")
	}
	if len(cfg.Sources.Dirs) != 2 || cfg.Sources.Dirs[1] != "/opt/shaders" {
		t.Errorf("unexpected dirs %v", cfg.Sources.Dirs)
	}
	if cfg.Sources.Document != "index.html" {
		t.Errorf("expected document index.html, got %s", cfg.Sources.Document)
	}
	if cfg.Program.Vertex != "vertex-shader" || cfg.Program.Fragment != "fragment-shader" {
		t.Errorf("unexpected program %+v", cfg.Program)
	}
	if !cfg.Report.Dialog {
		t.Error("expected dialog to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "shaderlink.log" {
		t.Errorf("expected log file 'shaderlink.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
context:
  major: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/shaderlink.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad profile", func(c *Config) { c.Context.Profile = "vulkan" }, "context.profile"},
		{"missing vertex", func(c *Config) { c.Program.Vertex = "" }, "program.vertex"},
		{"missing fragment", func(c *Config) { c.Program.Fragment = "" }, "program.fragment"},
		{"zero size", func(c *Config) { c.Context.Width = 0 }, "context size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("program:\n  vertex: a\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find shaderlink.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "core profile flag",
			setup: func() { *flagProfile = "core" },
			verify: func(cfg *Config) {
				if cfg.Context.Profile != "core" {
					t.Errorf("expected profile core, got %s", cfg.Context.Profile)
				}
				if cfg.Context.Major != 4 || cfg.Context.Minor != 1 {
					t.Errorf("expected 4.1 for core, got %d.%d", cfg.Context.Major, cfg.Context.Minor)
				}
			},
			teardown: func() { *flagProfile = "" },
		},
		{
			name: "program flags",
			setup: func() {
				*flagVertex = "vertex-shader"
				*flagFragment = "fragment-shader"
			},
			verify: func(cfg *Config) {
				if cfg.Program.Vertex != "vertex-shader" || cfg.Program.Fragment != "fragment-shader" {
					t.Errorf("unexpected program %+v", cfg.Program)
				}
			},
			teardown: func() {
				*flagVertex = ""
				*flagFragment = ""
			},
		},
		{
			name:  "dir flag",
			setup: func() { *flagDirs = "shaders, more ,," },
			verify: func(cfg *Config) {
				if len(cfg.Sources.Dirs) != 2 || cfg.Sources.Dirs[0] != "shaders" || cfg.Sources.Dirs[1] != "more" {
					t.Errorf("unexpected dirs %q", cfg.Sources.Dirs)
				}
			},
			teardown: func() { *flagDirs = "" },
		},
		{
			name: "document, dialog and no-builtin flags",
			setup: func() {
				*flagDocument = "page.html"
				*flagDialog = true
				*flagNoBuiltin = true
			},
			verify: func(cfg *Config) {
				if cfg.Sources.Document != "page.html" {
					t.Errorf("expected document page.html, got %s", cfg.Sources.Document)
				}
				if !cfg.Report.Dialog {
					t.Error("expected dialog to be enabled")
				}
				if cfg.Sources.Builtin {
					t.Error("expected builtin sources to be disabled")
				}
			},
			teardown: func() {
				*flagDocument = ""
				*flagDialog = false
				*flagNoBuiltin = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "shaderlink.yaml")

	yamlContent := `
program:
  vertex: file-vertex
  fragment: file-fragment
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagVertex = "flag-vertex"
	defer func() {
		*flagConfig = ""
		*flagVertex = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Program.Vertex != "flag-vertex" {
		t.Errorf("expected vertex from flag, got %s", cfg.Program.Vertex)
	}
	if cfg.Program.Fragment != "file-fragment" {
		t.Errorf("expected fragment from file, got %s", cfg.Program.Fragment)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	*flagProfile = "metal"
	defer func() { *flagProfile = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an unknown profile")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shaderlink.yaml")

	cfg := Default()
	cfg.Program.Vertex = "saved-vertex"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Program.Vertex != "saved-vertex" {
		t.Errorf("expected saved-vertex, got %s", loaded.Program.Vertex)
	}
}

func TestLoadPicksBuiltinForProfile(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	t.Run("core flag", func(t *testing.T) {
		*flagProfile = "core"
		defer func() { *flagProfile = "" }()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if cfg.Program != BuiltinCore {
			t.Errorf("expected core built-in pair, got %+v", cfg.Program)
		}
	})

	t.Run("es default", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if cfg.Program != BuiltinES {
			t.Errorf("expected ES built-in pair, got %+v", cfg.Program)
		}
	})

	t.Run("core from file", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "core.yaml")
		if err := os.WriteFile(configPath, []byte("context:\n  profile: core\n  major: 4\n  minor: 1\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		*flagConfig = configPath
		defer func() { *flagConfig = "" }()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if cfg.Program != BuiltinCore {
			t.Errorf("expected core built-in pair, got %+v", cfg.Program)
		}
	})

	t.Run("custom ids kept", func(t *testing.T) {
		*flagProfile = "core"
		*flagVertex = "sky.vert"
		defer func() {
			*flagProfile = ""
			*flagVertex = ""
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if cfg.Program.Vertex != "sky.vert" || cfg.Program.Fragment != "basic.frag" {
			t.Errorf("user ids should not be swapped, got %+v", cfg.Program)
		}
	})
}

func TestBuiltinProgram(t *testing.T) {
	if got := BuiltinProgram("core"); got != BuiltinCore {
		t.Errorf("core: got %+v", got)
	}
	if got := BuiltinProgram("es"); got != BuiltinES {
		t.Errorf("es: got %+v", got)
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
