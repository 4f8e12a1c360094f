package viewer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind enumerates what a key press can do to the navigation state.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionShift
	ActionToday
	ActionQuit
)

// Action is a resolved key press.
type Action struct {
	Kind ActionKind
	// Days is the signed offset for ActionShift.
	Days int
}

// Name labels the action for logs and metrics.
func (a Action) Name() string {
	switch a.Kind {
	case ActionShift:
		return "shift"
	case ActionToday:
		return "today"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyMap binds keys to navigation actions.
// The direction of h/l and j/k is intentionally the reverse of vi motions:
// h and j move forward in time, k and l move backward.
type KeyMap struct {
	WeekForward key.Binding
	DayForward  key.Binding
	DayBack     key.Binding
	WeekBack    key.Binding
	Today       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the viewer's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		WeekForward: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "+1 week")),
		DayForward:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "+1 day")),
		DayBack:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "-1 day")),
		WeekBack:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "-1 week")),
		Today:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Resolve maps a key press to an action; unknown keys and pastes resolve to ActionNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) Action {
	if msg.Paste {
		return Action{}
	}
	switch {
	case key.Matches(msg, k.WeekForward):
		return Action{Kind: ActionShift, Days: 7}
	case key.Matches(msg, k.DayForward):
		return Action{Kind: ActionShift, Days: 1}
	case key.Matches(msg, k.DayBack):
		return Action{Kind: ActionShift, Days: -1}
	case key.Matches(msg, k.WeekBack):
		return Action{Kind: ActionShift, Days: -7}
	case key.Matches(msg, k.Today):
		return Action{Kind: ActionToday}
	case key.Matches(msg, k.Quit):
		return Action{Kind: ActionQuit}
	default:
		return Action{}
	}
}
