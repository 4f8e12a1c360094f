package testutil

import (
	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/domain/teams"
)

// SampleTeam returns a minimal team fixture with the provided abbreviation.
func SampleTeam(id int, abbreviation string) teams.Team {
	return teams.Team{
		ID:           id,
		Abbreviation: abbreviation,
		City:         "City " + abbreviation,
		Conference:   "East",
		Division:     "Atlantic",
		FullName:     "Team " + abbreviation,
		Name:         abbreviation,
	}
}

// SampleGame returns a final game between home and visitor with the given scores.
func SampleGame(id int, home string, homeScore int, visitor string, visitorScore int) games.Game {
	return games.Game{
		ID:               id,
		Date:             "2023-01-15",
		Season:           2022,
		Status:           "Final",
		Period:           4,
		HomeTeam:         SampleTeam(id*2, home),
		VisitorTeam:      SampleTeam(id*2+1, visitor),
		HomeTeamScore:    homeScore,
		VisitorTeamScore: visitorScore,
	}
}

// SampleResultSet wraps games in a single-page ResultSet.
func SampleResultSet(g ...games.Game) games.ResultSet {
	return games.NewResultSet(g, games.PageInfo{CurrentPage: 1, PerPage: 25})
}
