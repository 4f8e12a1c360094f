package viewer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPanelFillsFrame(t *testing.T) {
	out := Panel(View{Title: "NBA Game results of: 2023-01-15", Body: "LAL 101:99 BOS\n" + Legend}, 40, 12)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), out)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Fatalf("line %d has width %d: %q", i, w, line)
		}
	}
	if !strings.Contains(lines[0], "NBA Game results of: 2023-01-15") {
		t.Fatalf("title missing from top border: %q", lines[0])
	}
	if !strings.Contains(out, "LAL 101:99 BOS") || !strings.Contains(out, "quit: q") {
		t.Fatalf("body missing:\n%s", out)
	}
}

func TestPanelClipsBody(t *testing.T) {
	out := Panel(View{Title: "t", Body: "a\nb\nc\nd\ne"}, 10, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if strings.Contains(out, "c") {
		t.Fatalf("expected body clipped after two rows:\n%s", out)
	}
}

func TestPanelTruncatesLongTitle(t *testing.T) {
	out := Panel(View{Title: "2023-01-16 is in the future."}, 12, 3)
	top := strings.Split(out, "\n")[0]
	if lipgloss.Width(top) != 12 {
		t.Fatalf("unexpected top width %d: %q", lipgloss.Width(top), top)
	}
	if !strings.Contains(top, "2023-01-16") {
		t.Fatalf("expected truncated title, got %q", top)
	}
}

func TestPanelTooSmall(t *testing.T) {
	if out := Panel(View{Title: "x"}, 1, 10); out != "" {
		t.Fatalf("expected nothing, got %q", out)
	}
	out := Panel(View{Title: "x"}, 5, 2)
	if len(strings.Split(out, "\n")) != 2 {
		t.Fatalf("expected only the edges, got %q", out)
	}
}
