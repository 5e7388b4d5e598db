// Package config resolves tool settings from defaults, an optional YAML or
// JSON file, and environment fallbacks. Flag overrides are applied by the
// CLI layer on top of the resolved Config.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LookupBaseURL string
	WhoisServer   string
	TimeoutS      int
	Verbosity     int
	SpoolDir      string
}

type fileConfig struct {
	LookupBaseURL *string `json:"lookup_base_url" yaml:"lookup_base_url"`
	WhoisServer   *string `json:"whois_server" yaml:"whois_server"`
	TimeoutS      *int    `json:"timeout" yaml:"timeout"`
	Verbosity     *int    `json:"verbosity" yaml:"verbosity"`
	SpoolDir      *string `json:"spool_dir" yaml:"spool_dir"`
}

// Default returns the built-in settings. IOC_TRIAGE_LOOKUP_URL overrides
// the lookup endpoint without touching a config file.
func Default() *Config {
	cfg := &Config{
		LookupBaseURL: "https://labs.inquest.net",
		WhoisServer:   "whois.verisign-grs.com:43",
		TimeoutS:      60,
		Verbosity:     0,
		SpoolDir:      "",
	}
	if env := strings.TrimSpace(os.Getenv("IOC_TRIAGE_LOOKUP_URL")); env != "" {
		cfg.LookupBaseURL = env
	}
	return cfg
}

// Load resolves the configuration, merging the file at path (if any) onto
// the defaults. File values only fill fields; they never blank them.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %q does not exist", path)
		}
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %q is a directory", path)
	}

	fc, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}

	if fc.LookupBaseURL != nil {
		cfg.LookupBaseURL = strings.TrimSpace(*fc.LookupBaseURL)
	}
	if fc.WhoisServer != nil {
		cfg.WhoisServer = strings.TrimSpace(*fc.WhoisServer)
	}
	if fc.TimeoutS != nil {
		cfg.TimeoutS = *fc.TimeoutS
	}
	if fc.Verbosity != nil {
		cfg.Verbosity = *fc.Verbosity
	}
	if fc.SpoolDir != nil {
		cfg.SpoolDir = strings.TrimSpace(*fc.SpoolDir)
	}

	if cfg.TimeoutS <= 0 {
		cfg.TimeoutS = 60
	}
	return cfg, nil
}

func loadConfigFile(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
	default:
		// Try YAML first (it is a JSON superset in practice for our shape),
		// then JSON, so extensionless paths still work.
		if yamlErr := yaml.Unmarshal(raw, &cfg); yamlErr != nil {
			if jsonErr := json.Unmarshal(raw, &cfg); jsonErr != nil {
				return nil, fmt.Errorf("not valid YAML (%v) nor JSON (%v)", yamlErr, jsonErr)
			}
		}
	}
	return &cfg, nil
}
