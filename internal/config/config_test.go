package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/HendryAvila/lifemorale/internal/pipeline"
)

// isolate points HOME and the working directory at an empty temp dir so
// no real lmi.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: write config: %v", err)
	}
	return path
}

// --- Load ---

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %s, want :8080", s.HTTP.Addr)
	}
	if s.HTTP.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", s.HTTP.ShutdownTimeout)
	}
	if s.HTTP.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("MaxBodyBytes = %d, want %d", s.HTTP.MaxBodyBytes, DefaultMaxBodyBytes)
	}
	if s.Log.Level != "info" || s.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", s.Log)
	}
	if s.Scoring.Strict {
		t.Error("strict mode should be off by default")
	}
	if got := s.Scoring.PipelineConfig(); got != pipeline.DefaultConfig() {
		t.Errorf("PipelineConfig = %+v, want defaults", got)
	}
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "custom.yaml", `
log:
  level: debug
http:
  addr: "127.0.0.1:9000"
  read_timeout: 2s
scoring:
  strict: true
  cross_lift:
    enabled: true
    alpha: 12
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.HTTP.Addr != "127.0.0.1:9000" || s.HTTP.ReadTimeout != 2*time.Second {
		t.Errorf("HTTP = %+v", s.HTTP)
	}
	if !s.Scoring.Strict {
		t.Error("Strict should be true")
	}
	cfg := s.Scoring.PipelineConfig()
	if !cfg.CrossLift.Enabled || cfg.CrossLift.Alpha != 12 {
		t.Errorf("CrossLift = %+v, want enabled alpha 12", cfg.CrossLift)
	}
	if cfg.Calibration != pipeline.DefaultConfig().Calibration {
		t.Errorf("Calibration = %+v, want defaults", cfg.Calibration)
	}
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "lmi.yaml", "scoring:\n  ri:\n    global_multiplier: 0.5\n")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Scoring.RI.GlobalMultiplier != 0.5 {
		t.Errorf("GlobalMultiplier = %v, want 0.5", s.Scoring.RI.GlobalMultiplier)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "lmi.yaml", "scoring:\n  cross_lift:\n    alpha: 12\n")
	t.Setenv("LMI_SCORING_CROSS_LIFT_ALPHA", "30")
	t.Setenv("LMI_HTTP_ADDR", ":7070")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Scoring.CrossLift.Alpha != 30 {
		t.Errorf("Alpha = %v, want 30 from env", s.Scoring.CrossLift.Alpha)
	}
	if s.HTTP.Addr != ":7070" {
		t.Errorf("Addr = %s, want :7070 from env", s.HTTP.Addr)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing explicit config file")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "bad.yaml", "log:\n  level: loud\nhttp:\n  max_body_bytes: 0\nscoring:\n  calibration:\n    k: 0\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should reject invalid settings")
	}
	for _, want := range []string{"log level", "http.max_body_bytes", "calibration.k"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}
