package games

import (
	"fmt"

	"github.com/preston-bernstein/nba-scores/internal/domain/teams"
)

// Game is one result as reported by the scores API.
type Game struct {
	ID               int        `json:"id"`
	Date             string     `json:"date"`
	Season           int        `json:"season"`
	Postseason       bool       `json:"postseason"`
	Status           string     `json:"status"`
	Time             string     `json:"time,omitempty"`
	Period           int        `json:"period"`
	HomeTeam         teams.Team `json:"home_team"`
	VisitorTeam      teams.Team `json:"visitor_team"`
	HomeTeamScore    int        `json:"home_team_score"`
	VisitorTeamScore int        `json:"visitor_team_score"`
}

// DisplayLine renders the game as "<home> <home_score>:<visitor_score> <visitor>" without a newline.
func (g Game) DisplayLine() string {
	return fmt.Sprintf("%s %d:%d %s",
		g.HomeTeam.Abbreviation,
		g.HomeTeamScore,
		g.VisitorTeamScore,
		g.VisitorTeam.Abbreviation,
	)
}

// PageInfo is the pagination metadata returned alongside a page of games.
// Only the first page is ever requested; the fields are kept for completeness.
type PageInfo struct {
	CurrentPage int  `json:"current_page"`
	NextPage    *int `json:"next_page"`
	PerPage     int  `json:"per_page"`
}

// HasNext reports whether the API advertised another page.
func (p PageInfo) HasNext() bool {
	return p.NextPage != nil
}

// ResultSet is the decoded collection of games for one queried date.
type ResultSet struct {
	Games []Game   `json:"data"`
	Page  PageInfo `json:"meta"`
}

// Len returns the number of games in the set; nil-safe.
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Games)
}

// NewResultSet builds a ResultSet, normalizing a nil slice to empty.
func NewResultSet(games []Game, page PageInfo) ResultSet {
	if games == nil {
		games = []Game{}
	}
	return ResultSet{
		Games: games,
		Page:  page,
	}
}
