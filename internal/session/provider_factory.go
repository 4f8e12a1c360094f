package session

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-scores/internal/config"
	"github.com/preston-bernstein/nba-scores/internal/logging"
	"github.com/preston-bernstein/nba-scores/internal/metrics"
	"github.com/preston-bernstein/nba-scores/internal/providers"
	"github.com/preston-bernstein/nba-scores/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-scores/internal/providers/fixture"
)

const (
	providerBalldontlie = "balldontlie"
	providerFixture     = "fixture"
)

// providerFactory assembles the configured provider with the instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	base, name := selectProvider(cfg, f.logger)
	return f.wrap(base, name)
}

func (f providerFactory) wrap(base providers.GameProvider, name string) providers.GameProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(name, base))
}

func selectProvider(cfg config.Config, logger *slog.Logger) (providers.GameProvider, string) {
	switch strings.ToLower(cfg.Provider) {
	case providerBalldontlie, "":
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL: cfg.Balldontlie.BaseURL,
			APIKey:  cfg.Balldontlie.APIKey,
			Timeout: cfg.HTTPTimeout,
		}), providerBalldontlie
	case providerFixture:
		return fixture.New(), providerFixture
	default:
		logging.Warn(logger, "unknown provider, falling back to balldontlie",
			slog.String(logging.FieldProvider, cfg.Provider),
		)
		return selectProvider(config.Config{
			Provider:    providerBalldontlie,
			HTTPTimeout: cfg.HTTPTimeout,
			Balldontlie: cfg.Balldontlie,
		}, logger)
	}
}
