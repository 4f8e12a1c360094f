package viewer

import (
	"strings"
	"time"
)

// Legend is the static navigation help appended below the game lines.
// Its wording does not spell out which of each key pair moves forward.
const Legend = "\nNavigation:\none day: j|k\none week: h|l\ntoday: t\nquit: q"

// View is the renderer's output: the panel title and its body text.
type View struct {
	Title string
	Body  string
}

// Render turns the navigation state into panel text. It has no side effects.
func Render(s State, now time.Time) View {
	date := s.SelectedDate()

	if s.Selected.After(now) {
		return View{Title: date + " is in the future."}
	}

	title := "NBA Game results of: " + date
	if s.LastResult == nil {
		return View{Title: title}
	}

	var b strings.Builder
	for _, g := range s.LastResult.Games {
		b.WriteString(g.DisplayLine())
		b.WriteByte('\n')
	}
	b.WriteString(Legend)
	return View{Title: title, Body: b.String()}
}
