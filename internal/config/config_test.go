package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	t.Setenv("IOC_TRIAGE_LOOKUP_URL", "")

	cfg := Default()

	if cfg.LookupBaseURL != "https://labs.inquest.net" {
		t.Fatalf("unexpected default lookup URL: %q", cfg.LookupBaseURL)
	}
	if cfg.WhoisServer != "whois.verisign-grs.com:43" {
		t.Fatalf("unexpected default whois server: %q", cfg.WhoisServer)
	}
	if cfg.TimeoutS != 60 {
		t.Fatalf("unexpected default timeout: %d", cfg.TimeoutS)
	}
}

func TestDefaultEnvOverride(t *testing.T) {
	t.Setenv("IOC_TRIAGE_LOOKUP_URL", "http://127.0.0.1:9999")

	if got := Default().LookupBaseURL; got != "http://127.0.0.1:9999" {
		t.Fatalf("env override ignored, got %q", got)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Setenv("IOC_TRIAGE_LOOKUP_URL", "")

	path := filepath.Join(t.TempDir(), "triage.yaml")
	data := []byte("lookup_base_url: http://stub.local\nwhois_server: whois.local:43\ntimeout: 15\nverbosity: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := &Config{
		LookupBaseURL: "http://stub.local",
		WhoisServer:   "whois.local:43",
		TimeoutS:      15,
		Verbosity:     2,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSONPartialMerge(t *testing.T) {
	t.Setenv("IOC_TRIAGE_LOOKUP_URL", "")

	path := filepath.Join(t.TempDir(), "triage.json")
	if err := os.WriteFile(path, []byte(`{"timeout": 5}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.TimeoutS != 5 {
		t.Fatalf("timeout not merged, got %d", cfg.TimeoutS)
	}
	if cfg.LookupBaseURL != "https://labs.inquest.net" {
		t.Fatalf("untouched field lost its default, got %q", cfg.LookupBaseURL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for directory config path")
	}
}
