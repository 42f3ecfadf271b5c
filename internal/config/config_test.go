package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scene.MaxDepth != 100 {
		t.Errorf("expected max depth 100, got %d", cfg.Scene.MaxDepth)
	}
	if cfg.Scene.PointLimit != 0 {
		t.Errorf("expected unlimited points, got %d", cfg.Scene.PointLimit)
	}
	if cfg.Scene.VisitGuard {
		t.Error("expected visit guard to be off by default")
	}
	if cfg.Output.DumpAfterEach {
		t.Error("expected dump_after_each to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestSceneOptions(t *testing.T) {
	cfg := Default()
	cfg.Scene.MaxDepth = 7
	cfg.Scene.PointLimit = 64
	cfg.Scene.EdgeLimit = 3
	cfg.Scene.VisitGuard = true

	opts := cfg.SceneOptions()
	if opts.MaxDepth != 7 || opts.PointLimit != 64 || opts.EdgeLimit != 3 || !opts.VisitGuard {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.Logger != nil {
		t.Error("SceneOptions should leave the logger unset")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mobscript.yaml")

	yamlContent := `
scene:
  max_depth: 12
  point_limit: 1000
  visit_guard: true

output:
  dump_after_each: true

logging:
  level: "debug"
  log_file: "mobscript.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Scene.MaxDepth != 12 {
		t.Errorf("expected max depth 12, got %d", cfg.Scene.MaxDepth)
	}
	if cfg.Scene.PointLimit != 1000 {
		t.Errorf("expected point limit 1000, got %d", cfg.Scene.PointLimit)
	}
	if cfg.Scene.EdgeLimit != 0 {
		t.Errorf("edge limit not in file should keep default, got %d", cfg.Scene.EdgeLimit)
	}
	if !cfg.Scene.VisitGuard {
		t.Error("expected visit guard to be true")
	}
	if !cfg.Output.DumpAfterEach {
		t.Error("expected dump_after_each to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "mobscript.log" {
		t.Errorf("expected log file 'mobscript.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
scene:
  max_depth: not a number
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

func TestLoadFromFileNegativeDepth(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "negative.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  max_depth: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for negative max_depth, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/mobscript.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
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
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "mobscript.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  max_depth: 5\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find mobscript.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "run.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file run.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
		{
			name:  "max depth flag",
			setup: func() { *flagMaxDepth = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.MaxDepth != 0 {
					t.Errorf("expected max depth 0, got %d", cfg.Scene.MaxDepth)
				}
			},
			teardown: func() { *flagMaxDepth = -1 },
		},
		{
			name:  "visit guard flag",
			setup: func() { *flagVisitGuard = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Scene.VisitGuard {
					t.Error("expected visit guard with flag")
				}
			},
			teardown: func() { *flagVisitGuard = false },
		},
		{
			name:  "dump each flag",
			setup: func() { *flagDumpEach = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Output.DumpAfterEach {
					t.Error("expected dump_after_each with flag")
				}
			},
			teardown: func() { *flagDumpEach = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mobscript.yaml")

	yamlContent := `
scene:
  max_depth: 40
  point_limit: 500
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagMaxDepth = 8
	defer func() {
		*flagConfig = ""
		*flagMaxDepth = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Depth comes from the flag, point limit from the file.
	if cfg.Scene.MaxDepth != 8 {
		t.Errorf("expected max depth 8 from flag, got %d", cfg.Scene.MaxDepth)
	}
	if cfg.Scene.PointLimit != 500 {
		t.Errorf("expected point limit 500 from file, got %d", cfg.Scene.PointLimit)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mobscript.yaml")

	cfg := Default()
	cfg.Scene.MaxDepth = 33
	cfg.Logging.Level = "warn"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Scene.MaxDepth != 33 || loaded.Logging.Level != "warn" {
		t.Errorf("saved config not restored: %+v", loaded)
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mobscript.yaml")

	cfg := Default()
	cfg.Scene.EdgeLimit = -1
	if err := cfg.SaveTo(path); err == nil {
		t.Fatal("expected error saving a negative edge limit")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("invalid config should not be written, stat err = %v", err)
	}
}

func TestSaveToWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mobscript.yaml")
	if err := Default().SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# mobscript configuration.") {
		t.Errorf("expected header comment, got %q", data)
	}
	if !strings.Contains(string(data), "max_depth: 100") {
		t.Errorf("expected scene section in saved config:\n%s", data)
	}
}
