package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Monitor.ReportEvery != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[monitor]\nreport-every = \"250ms\"\nmouse-motion = false\nlog-file = \"/tmp/pollhz.log\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Monitor.ReportEvery == nil || *cfg.Monitor.ReportEvery != "250ms" {
		t.Fatalf("unexpected report-every: %+v", cfg.Monitor.ReportEvery)
	}
	if cfg.Monitor.MouseMotion == nil || *cfg.Monitor.MouseMotion {
		t.Fatalf("expected mouse-motion false")
	}
	if cfg.Monitor.LogFile == nil || *cfg.Monitor.LogFile != "/tmp/pollhz.log" {
		t.Fatalf("unexpected log-file: %+v", cfg.Monitor.LogFile)
	}
	if cfg.Monitor.LogPretty != nil {
		t.Fatalf("expected unset log-pretty to stay nil")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
