package viewer

import (
	"context"
	"errors"
	"time"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/providers"
	"github.com/preston-bernstein/nba-scores/internal/timeutil"
)

// OutcomeKind tags the result of a single fetch.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeEmpty
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	default:
		return "error"
	}
}

// Outcome is what one fetch produced. Err is set only for OutcomeError.
type Outcome struct {
	Kind   OutcomeKind
	Date   string
	Result games.ResultSet
	Err    error
}

// Fetch asks the provider for the games on day's UTC calendar date and classifies the result.
// Network and decode failures become OutcomeError; they never abort the caller.
func Fetch(ctx context.Context, provider providers.GameProvider, day time.Time) Outcome {
	date := timeutil.FormatUTCDate(day)
	if provider == nil {
		return Outcome{Kind: OutcomeError, Date: date, Err: providers.ErrProviderUnavailable}
	}

	result, err := provider.FetchGames(ctx, date)
	if err != nil {
		return Outcome{Kind: OutcomeError, Date: date, Err: err}
	}
	if result.Games == nil {
		result.Games = []games.Game{}
	}
	if len(result.Games) == 0 {
		return Outcome{Kind: OutcomeEmpty, Date: date, Result: result}
	}
	return Outcome{Kind: OutcomeSuccess, Date: date, Result: result}
}

// Reason gives a short human description of a failed outcome for the status line.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	if rl, ok := providers.AsRateLimitError(o.Err); ok {
		if rl.RetryAfter > 0 {
			return "rate limited, retry in " + rl.RetryAfter.String()
		}
		return "rate limited"
	}
	if isTimeout(o.Err) {
		return "request timed out"
	}
	if _, ok := providers.AsDecodeError(o.Err); ok {
		return "unreadable response"
	}
	return o.Err.Error()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
