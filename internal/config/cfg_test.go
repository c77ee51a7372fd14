package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Styles.CacheCapacity != 4096 {
		t.Errorf("Default cache capacity = %d, want 4096", cfg.Styles.CacheCapacity)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `version: 1
styles:
  root: themes/dark
  cache_capacity: 0
logging:
  console:
    level: debug
  tracing: info
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Styles.Root != filepath.Clean("themes/dark") {
		t.Errorf("Root = %q, want themes/dark", cfg.Styles.Root)
	}
	if cfg.Styles.CacheCapacity != 0 {
		t.Errorf("CacheCapacity = %d, want 0", cfg.Styles.CacheCapacity)
	}
	if cfg.Styles.MaxParallel != 8 {
		t.Errorf("MaxParallel = %d, want default 8", cfg.Styles.MaxParallel)
	}
	if !cfg.Output.Swatches {
		t.Error("Expected Swatches to keep its default true")
	}
	if cfg.Logging.Tracing != "info" {
		t.Errorf("Tracing = %q, want info", cfg.Logging.Tracing)
	}
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	for name, content := range map[string]string{
		"unknown field": "version: 1\nstyles:\n  colour: red\n",
		"bad version":   "version: 2\n",
		"bad level":     "version: 1\nlogging:\n  console:\n    level: loud\n",
		"bad capacity":  "version: 1\nstyles:\n  cache_capacity: -1\n",
	} {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		if _, err := LoadConfiguration(configPath); err == nil {
			t.Errorf("%s: expected LoadConfiguration() to fail", name)
		}
	}
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected LoadConfiguration() of missing file to fail")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "cache_capacity: 4096") {
		t.Errorf("Dump() output misses cache capacity:\n%s", data)
	}
}

func TestPrepareLogger(t *testing.T) {
	for _, level := range []string{"none", "normal", "debug"} {
		conf := LoggingConfig{ConsoleLogger: LoggerConfig{Level: level}, Tracing: "error"}
		log, err := conf.Prepare("pwss")
		if err != nil || log == nil {
			t.Fatalf("Prepare(%s) error = %v", level, err)
		}
		log.Debug("test message")
	}
}
