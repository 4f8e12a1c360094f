package viewer

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preston-bernstein/nba-scores/internal/testutil"
)

func TestRunQuitsOnQ(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stub := &testutil.StubProvider{Default: testutil.SampleResultSet(testutil.SampleGame(1, "LAL", 101, "BOS", 99))}
	m := New(Options{Provider: stub, Now: testutil.NowAt(testutil.MustParseRFC3339("2023-01-15T12:00:00Z"))})

	var out bytes.Buffer
	final, err := Run(ctx, m, tea.WithInput(strings.NewReader("q")), tea.WithOutput(&out))
	if err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}
	if !final.State().QuitRequested {
		t.Fatal("expected quit flag on the final model")
	}
	if ctx.Err() != nil {
		t.Fatal("program should exit on q before the deadline")
	}
}

func TestRunCancelledContextIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(Options{Provider: &testutil.StubProvider{}})
	var out bytes.Buffer
	if _, err := Run(ctx, m, tea.WithInput(strings.NewReader("")), tea.WithOutput(&out)); err != nil {
		t.Fatalf("expected cancellation to be a clean exit, got %v", err)
	}
}
