package viewer

import (
	"time"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/timeutil"
)

// State is the navigation state driving the viewer loop.
// It is only mutated from Model.Update.
type State struct {
	Selected      time.Time
	QuitRequested bool
	// LastResult is nil until the first successful fetch.
	LastResult *games.ResultSet
}

// NewState starts on the current moment with nothing fetched yet.
func NewState(now time.Time) State {
	return State{Selected: now}
}

// Apply performs an action and reports whether the selected date changed.
func (s *State) Apply(a Action, now time.Time) bool {
	switch a.Kind {
	case ActionShift:
		s.Selected = timeutil.AddDays(s.Selected, a.Days)
		return true
	case ActionToday:
		s.Selected = now
		return true
	case ActionQuit:
		s.QuitRequested = true
	}
	return false
}

// Accept folds a fetch outcome into the state. Successful (including empty) results
// replace LastResult wholesale; a transient error leaves the previous result in place.
func (s *State) Accept(o Outcome) {
	if o.Kind == OutcomeError {
		return
	}
	result := o.Result
	s.LastResult = &result
}

// SelectedDate is the selected day as YYYY-MM-DD in UTC, the form used for titles and queries.
func (s State) SelectedDate() string {
	return timeutil.FormatUTCDate(s.Selected)
}
