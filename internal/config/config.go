package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime configuration for the viewer and the one-shot command.
type Config struct {
	Provider        string
	HTTPTimeout     Duration
	RefreshInterval Duration
	Balldontlie     BalldontlieConfig
	Logging         LoggingConfig
	Metrics         MetricsConfig
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Defaults returns the hard-coded configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Provider:        defaultProvider,
		HTTPTimeout:     defaultHTTPTimeout,
		RefreshInterval: defaultRefreshInterval,
		Balldontlie: BalldontlieConfig{
			BaseURL: defaultBdlBaseURL,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			File:   defaultLogFile(time.Now()),
		},
		Metrics: MetricsConfig{
			Enabled:      defaultMetricsEnabled,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return applyEnv(Defaults())
}

func applyEnv(cfg Config) Config {
	cfg.Provider = envOrDefault(envProvider, cfg.Provider)
	cfg.HTTPTimeout = durationEnvOrDefault(envHTTPTimeout, cfg.HTTPTimeout)
	cfg.RefreshInterval = durationEnvOrDefault(envRefreshInterval, cfg.RefreshInterval)
	cfg.Balldontlie = loadBalldontlie(cfg.Balldontlie)
	cfg.Logging = LoggingConfig{
		Level:  envOrDefault(envLogLevel, cfg.Logging.Level),
		Format: envOrDefault(envLogFormat, cfg.Logging.Format),
		File:   envOrDefault(envLogFile, cfg.Logging.File),
	}
	cfg.Metrics = loadMetrics(cfg.Metrics)
	return cfg
}

func defaultLogFile(now time.Time) string {
	return filepath.Join(os.TempDir(), "nba-scores-"+now.Format("2006-01-02")+".log")
}
