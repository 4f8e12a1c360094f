package providers

import (
	"context"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
)

// GameProvider defines how upstream game data is fetched for a single day.
// The date parameter is a YYYY-MM-DD string naming the UTC calendar day to query.
// Implementations return exactly one page of results; a zero-game ResultSet is not an error.
type GameProvider interface {
	FetchGames(ctx context.Context, date string) (games.ResultSet, error)
}
