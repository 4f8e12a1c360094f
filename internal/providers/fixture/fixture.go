package fixture

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/domain/teams"
	"github.com/preston-bernstein/nba-scores/internal/timeutil"
)

var fixtureTeams = []teams.Team{
	{ID: 2, Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic", FullName: "Boston Celtics", Name: "Celtics"},
	{ID: 14, Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific", FullName: "Los Angeles Lakers", Name: "Lakers"},
	{ID: 10, Abbreviation: "GSW", City: "Golden State", Conference: "West", Division: "Pacific", FullName: "Golden State Warriors", Name: "Warriors"},
	{ID: 16, Abbreviation: "MIA", City: "Miami", Conference: "East", Division: "Southeast", FullName: "Miami Heat", Name: "Heat"},
}

// Provider returns deterministic games for any date; useful offline and for demos.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns two finished games on past dates, and an empty page for dates after today (UTC).
// Scores are derived from the date so navigating shows changing results.
func (p *Provider) FetchGames(ctx context.Context, date string) (games.ResultSet, error) {
	_ = ctx

	day := p.now().UTC()
	if date != "" {
		parsed, err := timeutil.ParseDate(date)
		if err == nil {
			day = parsed
		}
	}
	label := timeutil.FormatDate(day)
	page := games.PageInfo{CurrentPage: 1, PerPage: 25}

	if label > timeutil.FormatUTCDate(p.now()) {
		return games.NewResultSet(nil, page), nil
	}

	seed := dateSeed(label)
	result := []games.Game{
		fixtureGame(1001, label, fixtureTeams[1], fixtureTeams[0], seed),
		fixtureGame(1002, label, fixtureTeams[2], fixtureTeams[3], seed>>8),
	}
	return games.NewResultSet(result, page), nil
}

func fixtureGame(id int, date string, home, visitor teams.Team, seed uint32) games.Game {
	return games.Game{
		ID:               id,
		Date:             date,
		Season:           2023,
		Status:           "Final",
		Period:           4,
		HomeTeam:         home,
		VisitorTeam:      visitor,
		HomeTeamScore:    90 + int(seed%30),
		VisitorTeamScore: 90 + int((seed/30)%30),
	}
}

func dateSeed(date string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(date))
	return h.Sum32()
}
