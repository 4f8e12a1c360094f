package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
)

// StubProvider returns configured results per date and records every call.
// Dates missing from Results fall back to Default; Err, when set, wins.
type StubProvider struct {
	mu      sync.Mutex
	Results map[string]games.ResultSet
	Default games.ResultSet
	Err     error
	Dates   []string
}

// FetchGames returns configured results while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string) (games.ResultSet, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Dates = append(s.Dates, date)
	if s.Err != nil {
		return games.ResultSet{}, s.Err
	}
	if rs, ok := s.Results[date]; ok {
		return rs, nil
	}
	return s.Default, nil
}

// Calls returns the dates requested so far.
func (s *StubProvider) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Dates...)
}

// SetErr swaps the configured error.
func (s *StubProvider) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}
