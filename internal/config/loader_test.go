package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
timeout: 10s
userAgent: snag/0.1
headers:
  Accept: application/json
  X-Env: staging
bufferHint: 65536
logLevel: debug
`)

	config, err := Parse(data, "client.yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if config.Timeout != "10s" {
		t.Errorf("Timeout = %q, want %q", config.Timeout, "10s")
	}
	if config.UserAgent != "snag/0.1" {
		t.Errorf("UserAgent = %q, want %q", config.UserAgent, "snag/0.1")
	}
	if config.Headers["Accept"] != "application/json" {
		t.Errorf("Headers[Accept] = %q, want %q", config.Headers["Accept"], "application/json")
	}
	if config.BufferHint != 65536 {
		t.Errorf("BufferHint = %d, want %d", config.BufferHint, 65536)
	}

	d, err := config.TimeoutDuration()
	if err != nil {
		t.Fatalf("TimeoutDuration() error = %v", err)
	}
	if d != 10*time.Second {
		t.Errorf("TimeoutDuration() = %v, want %v", d, 10*time.Second)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"timeout": "5s", "userAgent": "snag-json"}`)

	config, err := Parse(data, "client.json")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if config.Timeout != "5s" {
		t.Errorf("Timeout = %q, want %q", config.Timeout, "5s")
	}
	if config.UserAgent != "snag-json" {
		t.Errorf("UserAgent = %q, want %q", config.UserAgent, "snag-json")
	}
}

func TestParseDefaults(t *testing.T) {
	config, err := Parse([]byte(``), "empty.yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if config.Timeout != "30s" {
		t.Errorf("default Timeout = %q, want %q", config.Timeout, "30s")
	}
	if config.LogLevel != "info" {
		t.Errorf("default LogLevel = %q, want %q", config.LogLevel, "info")
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "bad timeout", config: Config{Timeout: "banana"}},
		{name: "negative timeout", config: Config{Timeout: "-5s"}},
		{name: "negative buffer hint", config: Config{BufferHint: -1}},
		{name: "unknown log level", config: Config{LogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(&tt.config); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() = nil error for missing file")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yml")
	if err := os.WriteFile(path, []byte("timeout: 2s\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.Timeout != "2s" {
		t.Errorf("Timeout = %q, want %q", config.Timeout, "2s")
	}
}
