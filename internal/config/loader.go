package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr                 string `json:"addr" yaml:"addr" toml:"addr"`
	CatalogDir           string `json:"catalog_dir" yaml:"catalog_dir" toml:"catalog_dir"`
	PendingWarnThreshold int    `json:"pending_warn_threshold" yaml:"pending_warn_threshold" toml:"pending_warn_threshold"`
	EditorCallTimeoutS   int    `json:"editor_call_timeout_s" yaml:"editor_call_timeout_s" toml:"editor_call_timeout_s"`
	MaxBodyBytes         int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	LogLevel             string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat            string `json:"log_format" yaml:"log_format" toml:"log_format"`
	CORSEnabled          bool   `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins          string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	CORSMethods          string `json:"cors_methods" yaml:"cors_methods" toml:"cors_methods"`
	CORSHeaders          string `json:"cors_headers" yaml:"cors_headers" toml:"cors_headers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
