package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/logging"
	"github.com/preston-bernstein/nba-scores/internal/metrics"
)

// instrumentedProvider wraps a GameProvider with latency/error metrics and logs.
// It makes exactly one attempt per call; failures are returned to the caller unchanged.
type instrumentedProvider struct {
	inner   GameProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedProvider wraps the given provider. A nil provider yields ErrProviderUnavailable on every call.
func NewInstrumentedProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) GameProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date string) (games.ResultSet, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return games.ResultSet{}, ErrProviderUnavailable
	}

	start := p.now()
	result, err := p.inner.FetchGames(ctx, date)
	elapsed := p.now().Sub(start)

	p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	if rl, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
	}

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch failed",
			slog.String(logging.FieldDate, date),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return games.ResultSet{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider fetch complete",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(result.Games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return result, nil
}
