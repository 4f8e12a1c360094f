package viewer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/nba-scores/internal/logging"
	"github.com/preston-bernstein/nba-scores/internal/metrics"
	"github.com/preston-bernstein/nba-scores/internal/providers"
	"github.com/preston-bernstein/nba-scores/internal/timeutil"
)

const (
	defaultRefreshInterval = 250 * time.Millisecond
	defaultWidth           = 80
	defaultHeight          = 24
)

// Messages.
type tickMsg time.Time

type fetchedMsg struct {
	seq     int
	outcome Outcome
	elapsed time.Duration
}

// Options configures a Model.
type Options struct {
	Context  context.Context
	Provider providers.GameProvider
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	// RefreshInterval bounds how long the view waits without input before redrawing.
	RefreshInterval time.Duration
	Now             func() time.Time
	Keys            *KeyMap
}

// Model is the bubbletea model of the viewer.
type Model struct {
	ctx      context.Context
	provider providers.GameProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	keys     KeyMap
	now      func() time.Time
	refresh  time.Duration

	state State

	// seq identifies the latest fetch; outcomes of older fetches are dropped.
	seq     int
	loading bool
	pending time.Time
	status  string
	spinner spinner.Model

	width, height int
}

// New builds the initial model: today selected, yesterday's games requested by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	refresh := opts.RefreshInterval
	if refresh <= 0 {
		refresh = defaultRefreshInterval
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle))

	m := Model{
		ctx:      ctx,
		provider: opts.Provider,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		keys:     keys,
		now:      now,
		refresh:  refresh,
		state:    NewState(now()),
		spinner:  sp,
	}
	// The first fetch is for the day before the selected one; Init issues it.
	m.beginFetch(timeutil.AddDays(m.state.Selected, -1))
	return m
}

// State exposes the current navigation state.
func (m Model) State() State {
	return m.state
}

// Status returns the transient status line text, empty when there is nothing to report.
func (m Model) Status() string {
	return m.status
}

// Loading reports whether a fetch is outstanding.
func (m Model) Loading() bool {
	return m.loading
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.fetchCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, m.tickCmd()

	case fetchedMsg:
		return m.handleFetched(msg), nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg)
	if action.Kind == ActionNone {
		return m, nil
	}
	m.metrics.RecordKeyAction(action.Name())

	if !m.state.Apply(action, m.now()) {
		if m.state.QuitRequested {
			logging.Info(m.logger, "quit requested")
			return m, tea.Quit
		}
		return m, nil
	}

	if m.logger != nil {
		m.logger.Debug("date changed",
			slog.String(logging.FieldKey, msg.String()),
			slog.String(logging.FieldDate, m.state.SelectedDate()),
		)
	}
	m.status = ""
	spinning := m.loading
	m.beginFetch(m.state.Selected)
	cmd := m.fetchCmd()
	if !spinning {
		cmd = tea.Batch(cmd, m.spinner.Tick)
	}
	return m, cmd
}

// beginFetch marks a fetch for day as the latest outstanding one.
func (m *Model) beginFetch(day time.Time) {
	m.seq++
	m.loading = true
	m.pending = day
}

// fetchCmd runs the pending fetch off the update loop.
func (m Model) fetchCmd() tea.Cmd {
	seq, day := m.seq, m.pending
	ctx, provider, now := m.ctx, m.provider, m.now
	return func() tea.Msg {
		start := now()
		outcome := Fetch(ctx, provider, day)
		return fetchedMsg{seq: seq, outcome: outcome, elapsed: now().Sub(start)}
	}
}

func (m Model) handleFetched(msg fetchedMsg) Model {
	o := msg.outcome
	m.metrics.RecordFetchOutcome(o.Kind.String(), msg.elapsed)

	if msg.seq != m.seq {
		if m.logger != nil {
			m.logger.Debug("dropping stale fetch", slog.String(logging.FieldDate, o.Date))
		}
		return m
	}
	m.loading = false

	if o.Kind == OutcomeError {
		m.status = "fetch failed for " + o.Date + ": " + o.Reason()
		logging.Error(m.logger, "fetch failed, keeping previous results", o.Err,
			slog.String(logging.FieldDate, o.Date),
		)
		return m
	}

	m.state.Accept(o)
	m.status = ""
	logging.Info(m.logger, "games loaded",
		slog.String(logging.FieldDate, o.Date),
		slog.String(logging.FieldOutcome, o.Kind.String()),
		slog.Int(logging.FieldCount, len(o.Result.Games)),
		slog.Int64(logging.FieldDurationMS, msg.elapsed.Milliseconds()),
	)
	return m
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	status := m.statusLine(width)
	if status != "" && height > 2 {
		height--
	} else {
		status = ""
	}

	out := Panel(Render(m.state, m.now()), width, height)
	if status != "" {
		out += "\n" + status
	}
	return out
}

func (m Model) statusLine(width int) string {
	switch {
	case m.loading:
		spin := m.spinner.View()
		return spin + loadingStyle.Render(truncate(" loading "+timeutil.FormatUTCDate(m.pending), width-lipgloss.Width(spin)))
	case m.status != "":
		return statusStyle.Render(truncate(m.status, width))
	default:
		return ""
	}
}
