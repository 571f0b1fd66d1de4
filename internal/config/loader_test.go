package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
service:
  name: smrsc
  log_level: debug
  tick_interval: 500ms
http:
  listen: ":9090"
  video_dir: /srv/videos
event:
  name: SMRSC 2026
  tagline: Robotic surgery, live
  organizer: SSInnovations
  target: "2026-04-08T09:30:00"
  timezone: Asia/Kolkata
  register_url: https://example.com/register
page:
  variant: gradient
  stream_buffer: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Service.TickInterval != 500*time.Millisecond {
		t.Errorf("tick_interval = %v, want 500ms", cfg.Service.TickInterval)
	}
	if cfg.HTTP.Listen != ":9090" {
		t.Errorf("listen = %q", cfg.HTTP.Listen)
	}
	if cfg.Page.Variant != "gradient" {
		t.Errorf("variant = %q", cfg.Page.Variant)
	}
	// Untouched fields keep their defaults.
	if cfg.HTTP.IdleTimeout != 60*time.Second {
		t.Errorf("idle_timeout = %v, want default 60s", cfg.HTTP.IdleTimeout)
	}

	target, err := cfg.TargetTime()
	if err != nil {
		t.Fatalf("TargetTime() failed: %v", err)
	}
	if target.Location().String() != "Asia/Kolkata" || target.Hour() != 9 || target.Minute() != 30 {
		t.Errorf("target = %v", target)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "event:\n  name: Dir Event\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(dir) failed: %v", err)
	}
	if cfg.Event.Name != "Dir Event" {
		t.Errorf("event.name = %q", cfg.Event.Name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("expected not found error, got %v", err)
	}

	_, err = Load(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "directory provided") {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg.Event.Target != "2026-04-08T00:00:00" {
		t.Errorf("default target = %q", cfg.Event.Target)
	}
	if cfg.Service.TickInterval != time.Second {
		t.Errorf("default tick_interval = %v", cfg.Service.TickInterval)
	}
}

func TestParseEnvInterpolation(t *testing.T) {
	t.Setenv("LAUNCHPAD_TEST_REGISTER", "https://tickets.example.com")

	cfg, err := Parse([]byte("event:\n  register_url: ${LAUNCHPAD_TEST_REGISTER}/smrsc\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Event.RegisterURL != "https://tickets.example.com/smrsc" {
		t.Errorf("register_url = %q", cfg.Event.RegisterURL)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad tick", "service:\n  tick_interval: 0s\n", "tick_interval must be positive"},
		{"bad log level", "service:\n  log_level: loud\n", "log_level must be one of"},
		{"empty listen", "http:\n  listen: \"\"\n", "http.listen is required"},
		{"negative timeout", "http:\n  read_timeout: -1s\n", "must not be negative"},
		{"empty name", "event:\n  name: \"\"\n", "event.name is required"},
		{"bad target", "event:\n  target: soon\n", "event.target"},
		{"bad timezone", "event:\n  timezone: Nowhere/Land\n", "load timezone"},
		{"unset env", "event:\n  register_url: ${LAUNCHPAD_TEST_UNSET_VAR}\n", "${LAUNCHPAD_TEST_UNSET_VAR} is not set"},
		{"empty variant", "page:\n  variant: \"\"\n", "page.variant is required"},
		{"bad buffer", "page:\n  stream_buffer: 0\n", "stream_buffer must be positive"},
		{"unknown field", "page:\n  colour: red\n", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")
	t.Setenv("LAUNCHPAD_CONFIG", path)

	got, err := Discover()
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if got != path {
		t.Errorf("Discover() = %q, want %q", got, path)
	}

	t.Setenv("LAUNCHPAD_CONFIG", filepath.Join(dir, "missing.yaml"))
	if _, err := Discover(); err == nil {
		t.Fatal("expected error for missing LAUNCHPAD_CONFIG target")
	}
}
