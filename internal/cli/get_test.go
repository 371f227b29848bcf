package cli

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/snaghq/snag/internal/output"
)

func TestParseHeaderFlags(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		expected map[string]string
	}{
		{
			name:     "Single header",
			flags:    []string{"X-Test: 1"},
			expected: map[string]string{"X-Test": "1"},
		},
		{
			name:     "Value containing colon",
			flags:    []string{"Authorization: Bearer a:b:c"},
			expected: map[string]string{"Authorization": "Bearer a:b:c"},
		},
		{
			name:     "Whitespace trimmed",
			flags:    []string{"  Accept :  text/plain  "},
			expected: map[string]string{"Accept": "text/plain"},
		},
		{
			name:     "Missing colon ignored",
			flags:    []string{"NotAHeader"},
			expected: map[string]string{},
		},
		{
			name:     "Empty name ignored",
			flags:    []string{": value"},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseHeaderFlags(tt.flags)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseHeaderFlags(%v) = %v, want %v", tt.flags, got, tt.expected)
			}
		})
	}
}

func TestMergeHeaders(t *testing.T) {
	base := map[string]string{"Accept": "text/plain", "X-Env": "config"}
	override := map[string]string{"X-Env": "flag"}

	got := mergeHeaders(base, override)
	if got["Accept"] != "text/plain" {
		t.Errorf("Accept = %q, want %q", got["Accept"], "text/plain")
	}
	if got["X-Env"] != "flag" {
		t.Errorf("X-Env = %q, want flag value to win", got["X-Env"])
	}
}

func TestRunGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "1" {
			t.Errorf("X-Test = %q, want %q", r.Header.Get("X-Test"), "1")
		}
		fmt.Fprint(w, "hello")
	}))
	defer server.Close()

	formatter := output.NewFormatter(false, true)
	got, err := runGet(getOptions{
		url:     server.URL,
		headers: []string{"X-Test: 1"},
		noColor: true,
	}, formatter)
	if err != nil {
		t.Fatalf("runGet() error = %v", err)
	}
	if got != "hello\n" {
		t.Errorf("runGet() = %q, want %q", got, "hello\n")
	}
}

func TestRunGetExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"users":[{"name":"alice"}]}`)
	}))
	defer server.Close()

	formatter := output.NewFormatter(false, true)
	got, err := runGet(getOptions{
		url:     server.URL,
		extract: "$.users[0].name",
		noColor: true,
	}, formatter)
	if err != nil {
		t.Fatalf("runGet() error = %v", err)
	}
	if got != "alice\n" {
		t.Errorf("runGet() = %q, want %q", got, "alice\n")
	}
}

func TestRunGetWithConfigFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ua=%s env=%s", r.Header.Get("User-Agent"), r.Header.Get("X-Env"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "client.yaml")
	cfg := "timeout: 5s\nuserAgent: snag-cfg/1.0\nheaders:\n  X-Env: staging\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	formatter := output.NewFormatter(false, true)
	got, err := runGet(getOptions{
		url:        server.URL,
		configPath: path,
		noColor:    true,
	}, formatter)
	if err != nil {
		t.Fatalf("runGet() error = %v", err)
	}
	if !strings.Contains(got, "ua=snag-cfg/1.0") {
		t.Errorf("runGet() = %q, missing configured user agent", got)
	}
	if !strings.Contains(got, "env=staging") {
		t.Errorf("runGet() = %q, missing configured header", got)
	}
}

func TestRunGetErrorSurfaces(t *testing.T) {
	formatter := output.NewFormatter(false, true)
	_, err := runGet(getOptions{url: "not a url", noColor: true}, formatter)
	if err == nil {
		t.Fatal("runGet() with malformed URL: want error")
	}
	if !strings.Contains(err.Error(), "transfer:") {
		t.Errorf("runGet() error = %v, want a transfer error", err)
	}
}
