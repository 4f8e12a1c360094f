package viewer

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/metrics"
	"github.com/preston-bernstein/nba-scores/internal/testutil"
)

func newTestModel(t *testing.T, stub *testutil.StubProvider) (Model, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	m := New(Options{
		Context:  context.Background(),
		Provider: stub,
		Logger:   logger,
		Metrics:  rec,
		Now:      testutil.NowAt(testutil.MustParseRFC3339("2023-01-15T12:00:00Z")),
	})
	return m, rec
}

// settle runs the model's pending fetch and feeds the outcome back.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.fetchCmd()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestNewRequestsYesterdayWhileShowingToday(t *testing.T) {
	stub := &testutil.StubProvider{}
	m, _ := newTestModel(t, stub)

	if m.State().SelectedDate() != "2023-01-15" {
		t.Fatalf("expected today selected, got %s", m.State().SelectedDate())
	}
	if !m.Loading() {
		t.Fatal("expected initial fetch outstanding")
	}
	if m.Init() == nil {
		t.Fatal("expected init commands")
	}

	m = settle(t, m)
	if calls := stub.Calls(); len(calls) != 1 || calls[0] != "2023-01-14" {
		t.Fatalf("expected initial fetch for yesterday, got %v", calls)
	}
	if m.Loading() || m.State().LastResult == nil {
		t.Fatalf("expected initial result stored, got %+v", m.State())
	}
}

func TestDateKeysFetchNewDate(t *testing.T) {
	stub := &testutil.StubProvider{}
	m, rec := newTestModel(t, stub)
	m = settle(t, m)

	m, cmd := press(t, m, runeKey("k"))
	if cmd == nil {
		t.Fatal("expected fetch command after date change")
	}
	m = settle(t, m)

	calls := stub.Calls()
	if calls[len(calls)-1] != "2023-01-14" {
		t.Fatalf("expected fetch for 2023-01-14, got %v", calls)
	}
	if m.State().SelectedDate() != "2023-01-14" {
		t.Fatalf("unexpected selected date %s", m.State().SelectedDate())
	}
	if rec.KeyActions("shift") != 1 {
		t.Fatalf("expected one shift recorded, got %d", rec.KeyActions("shift"))
	}
}

func TestQuitDoesNotFetch(t *testing.T) {
	stub := &testutil.StubProvider{}
	m, _ := newTestModel(t, stub)
	m = settle(t, m)
	before := len(stub.Calls())

	m, cmd := press(t, m, runeKey("q"))
	if !m.State().QuitRequested {
		t.Fatal("expected quit flag")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if len(stub.Calls()) != before {
		t.Fatalf("quit must not fetch, calls %v", stub.Calls())
	}
}

func TestKeysWhileLoadingKeepOneSpinner(t *testing.T) {
	m, _ := newTestModel(t, &testutil.StubProvider{})
	m = settle(t, m)

	m, cmd := press(t, m, runeKey("j"))
	if _, ok := cmd().(tea.BatchMsg); !ok {
		t.Fatal("expected fetch batched with a spinner tick when idle")
	}

	m, cmd = press(t, m, runeKey("j"))
	if !m.Loading() {
		t.Fatal("expected fetch outstanding")
	}
	raw := cmd()
	msg, ok := raw.(fetchedMsg)
	if !ok {
		t.Fatalf("expected only the fetch while the spinner runs, got %T", raw)
	}
	if msg.outcome.Date != "2023-01-17" {
		t.Fatalf("unexpected fetch date %s", msg.outcome.Date)
	}
}

func TestUnknownKeyIsNoop(t *testing.T) {
	m, _ := newTestModel(t, &testutil.StubProvider{})
	m = settle(t, m)

	next, cmd := press(t, m, runeKey("x"))
	if cmd != nil {
		t.Fatal("unknown key must not issue commands")
	}
	if next.State().SelectedDate() != m.State().SelectedDate() || next.State().QuitRequested {
		t.Fatalf("unknown key changed state %+v", next.State())
	}
}

func TestFailedFetchKeepsLastResult(t *testing.T) {
	stub := &testutil.StubProvider{Default: testutil.SampleResultSet(testutil.SampleGame(1, "LAL", 101, "BOS", 99))}
	m, rec := newTestModel(t, stub)
	m = settle(t, m)

	stub.SetErr(errBoom)
	m, _ = press(t, m, runeKey("k"))
	m = settle(t, m)

	if m.State().LastResult == nil || m.State().LastResult.Games[0].HomeTeam.Abbreviation != "LAL" {
		t.Fatalf("expected previous result kept, got %+v", m.State().LastResult)
	}
	if m.Status() != "fetch failed for 2023-01-14: boom" {
		t.Fatalf("unexpected status %q", m.Status())
	}
	if !strings.Contains(m.View(), "fetch failed for 2023-01-14") {
		t.Fatalf("status line missing from view:\n%s", m.View())
	}
	if rec.FetchOutcomes("error") != 1 {
		t.Fatalf("expected error outcome recorded, got %d", rec.FetchOutcomes("error"))
	}

	stub.SetErr(nil)
	m, _ = press(t, m, runeKey("j"))
	if m.Status() != "" {
		t.Fatalf("date change must clear status, got %q", m.Status())
	}
}

func TestStaleFetchIsDropped(t *testing.T) {
	stub := &testutil.StubProvider{
		Results: map[string]games.ResultSet{
			"2023-01-14": testutil.SampleResultSet(testutil.SampleGame(1, "LAL", 101, "BOS", 99)),
			"2023-01-13": testutil.SampleResultSet(testutil.SampleGame(2, "GSW", 88, "MIA", 120)),
		},
	}
	m, _ := newTestModel(t, stub)
	m = settle(t, m)

	m, _ = press(t, m, runeKey("k"))
	older := m.fetchCmd()
	m, _ = press(t, m, runeKey("k"))
	newer := m.fetchCmd()

	next, _ := m.Update(newer())
	m = next.(Model)
	next, _ = m.Update(older())
	m = next.(Model)

	if got := m.State().LastResult.Games[0].HomeTeam.Abbreviation; got != "GSW" {
		t.Fatalf("older response overwrote newer one, got %s", got)
	}
	if m.Loading() {
		t.Fatal("expected loading cleared by the latest fetch")
	}
}

func TestViewShowsFutureAndSizes(t *testing.T) {
	m, _ := newTestModel(t, &testutil.StubProvider{})
	m = settle(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 10})
	m = next.(Model)
	m, _ = press(t, m, runeKey("j"))
	m = settle(t, m)

	out := m.View()
	if !strings.Contains(out, "2023-01-16 is in the future.") {
		t.Fatalf("expected future title:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 10 {
		t.Fatalf("expected view to fill 10 rows, got %d", len(lines))
	}
}

func TestTickRearms(t *testing.T) {
	m, _ := newTestModel(t, &testutil.StubProvider{})
	_, cmd := m.Update(tickMsg{})
	if cmd == nil {
		t.Fatal("expected tick to re-arm")
	}
}
