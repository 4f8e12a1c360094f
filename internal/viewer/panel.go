package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelBorder      = lipgloss.NormalBorder()
	panelBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelTitleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	loadingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Panel draws v as a bordered box exactly width x height cells, with the title set into
// the top border. Body lines beyond the box are dropped; there is no scrolling.
func Panel(v View, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	inner := width - 2
	rows := height - 2

	top := panelBorderStyle.Render(panelBorder.TopLeft) +
		titleBar(v.Title, inner) +
		panelBorderStyle.Render(panelBorder.TopRight)

	if rows == 0 {
		// Only the top and bottom edges fit.
		return top + "\n" + panelBorderStyle.Render(panelBorder.BottomLeft+strings.Repeat(panelBorder.Bottom, inner)+panelBorder.BottomRight)
	}

	body := clipLines(lipgloss.NewStyle().Width(inner).Render(v.Body), rows)
	box := lipgloss.NewStyle().
		Border(panelBorder, false, true, true, true).
		BorderForeground(lipgloss.Color("245")).
		Width(inner).
		Height(rows).
		Render(body)

	return top + "\n" + box
}

func titleBar(title string, width int) string {
	title = truncate(title, width)
	fill := width - lipgloss.Width(title)
	if fill < 0 {
		fill = 0
	}
	return panelTitleStyle.Render(title) + panelBorderStyle.Render(strings.Repeat(panelBorder.Top, fill))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	for lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func clipLines(s string, max int) string {
	if max <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > max {
		lines = lines[:max]
	}
	return strings.Join(lines, "\n")
}
