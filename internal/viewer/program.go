package viewer

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives m until the user quits or ctx is cancelled. The alternate screen is used
// unless opts override the renderer; bubbletea restores the terminal on every exit path.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.ctx = ctx

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, options...).Run()

	out, ok := final.(Model)
	if !ok {
		out = m
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return out, nil
		}
		return out, fmt.Errorf("run viewer: %w", err)
	}
	return out, nil
}
