package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for YAML decoding; durations are written as "10s", "250ms".
type fileConfig struct {
	Provider        string            `yaml:"provider"`
	HTTPTimeout     string            `yaml:"http_timeout"`
	RefreshInterval string            `yaml:"refresh_interval"`
	Balldontlie     BalldontlieConfig `yaml:"balldontlie"`
	Logging         LoggingConfig     `yaml:"logging"`
	Metrics         fileMetrics       `yaml:"metrics"`
}

// fileMetrics uses pointers for booleans so an omitted key keeps its default.
type fileMetrics struct {
	Enabled      *bool  `yaml:"enabled"`
	Port         string `yaml:"port"`
	OtlpEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	OtlpInsecure *bool  `yaml:"otlp_insecure"`
}

// LoadFile reads a YAML configuration file on top of the defaults and then
// applies environment variable overrides, which always win.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg, err := mergeFile(Defaults(), fc)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

func mergeFile(cfg Config, fc fileConfig) (Config, error) {
	if fc.Provider != "" {
		cfg.Provider = fc.Provider
	}
	if fc.HTTPTimeout != "" {
		d, err := parsePositiveDuration(fc.HTTPTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("http_timeout: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if fc.RefreshInterval != "" {
		d, err := parsePositiveDuration(fc.RefreshInterval)
		if err != nil {
			return Config{}, fmt.Errorf("refresh_interval: %w", err)
		}
		cfg.RefreshInterval = d
	}
	if fc.Balldontlie.BaseURL != "" {
		cfg.Balldontlie.BaseURL = fc.Balldontlie.BaseURL
	}
	if fc.Balldontlie.APIKey != "" {
		cfg.Balldontlie.APIKey = fc.Balldontlie.APIKey
	}
	if fc.Logging.Level != "" {
		cfg.Logging.Level = fc.Logging.Level
	}
	if fc.Logging.Format != "" {
		cfg.Logging.Format = fc.Logging.Format
	}
	if fc.Logging.File != "" {
		cfg.Logging.File = fc.Logging.File
	}
	cfg.Metrics = mergeMetrics(cfg.Metrics, fc.Metrics)
	return cfg, nil
}

func mergeMetrics(cfg MetricsConfig, fm fileMetrics) MetricsConfig {
	if fm.Enabled != nil {
		cfg.Enabled = *fm.Enabled
	}
	if fm.Port != "" {
		cfg.Port = fm.Port
	}
	if fm.OtlpEndpoint != "" {
		cfg.OtlpEndpoint = fm.OtlpEndpoint
	}
	if fm.ServiceName != "" {
		cfg.ServiceName = fm.ServiceName
	}
	if fm.OtlpInsecure != nil {
		cfg.OtlpInsecure = *fm.OtlpInsecure
	}
	return cfg
}

func parsePositiveDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", raw)
	}
	return d, nil
}
