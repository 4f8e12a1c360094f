package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preston-bernstein/nba-scores/internal/config"
	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/logging"
	"github.com/preston-bernstein/nba-scores/internal/metrics"
	"github.com/preston-bernstein/nba-scores/internal/providers"
	"github.com/preston-bernstein/nba-scores/internal/timeutil"
	"github.com/preston-bernstein/nba-scores/internal/viewer"
)

var (
	metricsSetup = metrics.Setup
	runProgram   = viewer.Run
)

// Session wires configuration, telemetry and the game provider for one run of the CLI.
type Session struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.GameProvider
	metricsServer httpServer
	metricsStop   func(context.Context) error

	closeOnce sync.Once
}

// New builds a session using the provider named in cfg.
func New(cfg config.Config, logger *slog.Logger) *Session {
	return newSessionWithProvider(cfg, logger, nil)
}

func newSessionWithProvider(cfg config.Config, logger *slog.Logger, provider providers.GameProvider) *Session {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(provider, cfg.Provider)
	}

	return &Session{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Metrics exposes the session's recorder.
func (s *Session) Metrics() *metrics.Recorder {
	return s.metrics
}

// RunViewer serves metrics when enabled and runs the interactive viewer until the user
// quits or ctx is cancelled. Telemetry is always shut down before it returns.
func (s *Session) RunViewer(ctx context.Context, opts ...tea.ProgramOption) error {
	defer s.Close()
	s.startMetrics()

	logging.Info(s.logger, "viewer starting",
		slog.String(logging.FieldProvider, s.cfg.Provider),
	)
	m := viewer.New(viewer.Options{
		Context:         ctx,
		Provider:        s.provider,
		Logger:          s.logger,
		Metrics:         s.metrics,
		RefreshInterval: s.cfg.RefreshInterval,
	})
	if _, err := runProgram(ctx, m, opts...); err != nil {
		logging.Error(s.logger, "viewer stopped with error", err)
		return err
	}
	logging.Info(s.logger, "viewer stopped")
	return nil
}

// FetchOnce returns the games played on date (YYYY-MM-DD, UTC).
func (s *Session) FetchOnce(ctx context.Context, date string) (games.ResultSet, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return games.ResultSet{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	result, err := s.provider.FetchGames(ctx, date)
	if err != nil {
		return games.ResultSet{}, fmt.Errorf("fetch games for %s: %w", date, err)
	}
	return result, nil
}

// Close shuts telemetry down. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(s.shutdown)
}

func (s *Session) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Session) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newMetricsHTTPServer(recCfg.Port, handler)
	}
	return rec, metricsSrv, shutdown
}
