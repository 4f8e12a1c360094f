package balldontlie

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/domain/teams"
)

var (
	errMissingData = errors.New(`missing required field "data"`)
	errMissingMeta = errors.New(`missing required field "meta"`)
	errMissing     = errors.New("missing required field")
	errNegative    = errors.New("negative value")
)

// fieldReader collects the first problem found while reading required wire fields.
type fieldReader struct {
	prefix string
	err    error
}

func (r *fieldReader) fail(base error, name string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w %q", base, r.prefix+name)
	}
}

func (r *fieldReader) str(v *string, name string) string {
	if v == nil {
		r.fail(errMissing, name)
		return ""
	}
	return *v
}

func (r *fieldReader) flag(v *bool, name string) bool {
	if v == nil {
		r.fail(errMissing, name)
		return false
	}
	return *v
}

// count reads a required non-negative integer.
func (r *fieldReader) count(v *int, name string) int {
	if v == nil {
		r.fail(errMissing, name)
		return 0
	}
	if *v < 0 {
		r.fail(errNegative, name)
		return 0
	}
	return *v
}

func mapResultSet(payload gamesResponse) (games.ResultSet, error) {
	if payload.Data == nil {
		return games.ResultSet{}, errMissingData
	}
	if payload.Meta == nil {
		return games.ResultSet{}, errMissingMeta
	}

	out := make([]games.Game, 0, len(*payload.Data))
	for i, g := range *payload.Data {
		game, err := mapGame(g)
		if err != nil {
			return games.ResultSet{}, fmt.Errorf("data[%d]: %w", i, err)
		}
		out = append(out, game)
	}
	page, err := mapMeta(*payload.Meta)
	if err != nil {
		return games.ResultSet{}, err
	}
	return games.NewResultSet(out, page), nil
}

func mapGame(g gameResponse) (games.Game, error) {
	if g.HomeTeam == nil {
		return games.Game{}, fmt.Errorf("%w %q", errMissing, "home_team")
	}
	if g.VisitorTeam == nil {
		return games.Game{}, fmt.Errorf("%w %q", errMissing, "visitor_team")
	}

	r := fieldReader{}
	game := games.Game{
		ID:               r.count(g.ID, "id"),
		Date:             r.str(g.Date, "date"),
		Season:           r.count(g.Season, "season"),
		Postseason:       r.flag(g.Postseason, "postseason"),
		Status:           r.str(g.Status, "status"),
		Time:             mapTime(g.Time),
		Period:           r.count(g.Period, "period"),
		HomeTeamScore:    r.count(g.HomeTeamScore, "home_team_score"),
		VisitorTeamScore: r.count(g.VisitorTeamScore, "visitor_team_score"),
	}
	if r.err != nil {
		return games.Game{}, r.err
	}

	home, err := mapTeam(*g.HomeTeam, "home_team.")
	if err != nil {
		return games.Game{}, err
	}
	visitor, err := mapTeam(*g.VisitorTeam, "visitor_team.")
	if err != nil {
		return games.Game{}, err
	}
	game.HomeTeam = home
	game.VisitorTeam = visitor
	return game, nil
}

func mapTeam(t teamResponse, prefix string) (teams.Team, error) {
	r := fieldReader{prefix: prefix}
	team := teams.Team{
		ID:           r.count(t.ID, "id"),
		Abbreviation: r.str(t.Abbreviation, "abbreviation"),
		City:         r.str(t.City, "city"),
		Conference:   r.str(t.Conference, "conference"),
		Division:     r.str(t.Division, "division"),
		FullName:     r.str(t.FullName, "full_name"),
		Name:         r.str(t.Name, "name"),
	}
	return team, r.err
}

func mapMeta(m metaResponse) (games.PageInfo, error) {
	r := fieldReader{prefix: "meta."}
	page := games.PageInfo{
		CurrentPage: r.count(m.CurrentPage, "current_page"),
		NextPage:    m.NextPage,
		PerPage:     r.count(m.PerPage, "per_page"),
	}
	return page, r.err
}

func mapTime(t *string) string {
	if t == nil {
		return ""
	}
	return strings.TrimSpace(*t)
}
