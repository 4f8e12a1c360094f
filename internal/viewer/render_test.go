package viewer

import (
	"testing"
	"time"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
	"github.com/preston-bernstein/nba-scores/internal/testutil"
)

func stateWith(selected time.Time, rs *games.ResultSet) State {
	s := NewState(selected)
	s.LastResult = rs
	return s
}

func TestRenderGameLinesThenLegend(t *testing.T) {
	now := testutil.MustParseRFC3339("2023-01-20T00:00:00Z")
	rs := testutil.SampleResultSet(testutil.SampleGame(1, "LAL", 101, "BOS", 99))
	v := Render(stateWith(testutil.MustParseRFC3339("2023-01-15T00:00:00Z"), &rs), now)

	if v.Title != "NBA Game results of: 2023-01-15" {
		t.Fatalf("unexpected title %q", v.Title)
	}
	if want := "LAL 101:99 BOS\n" + Legend; v.Body != want {
		t.Fatalf("unexpected body %q", v.Body)
	}
}

func TestRenderKeepsGameOrder(t *testing.T) {
	now := testutil.MustParseRFC3339("2023-01-20T00:00:00Z")
	rs := testutil.SampleResultSet(
		testutil.SampleGame(1, "LAL", 101, "BOS", 99),
		testutil.SampleGame(2, "GSW", 88, "MIA", 120),
	)
	v := Render(stateWith(testutil.MustParseRFC3339("2023-01-15T00:00:00Z"), &rs), now)

	if want := "LAL 101:99 BOS\nGSW 88:120 MIA\n" + Legend; v.Body != want {
		t.Fatalf("unexpected body %q", v.Body)
	}
}

func TestRenderEmptyResultIsLegendOnly(t *testing.T) {
	now := testutil.MustParseRFC3339("2023-01-20T00:00:00Z")
	rs := testutil.SampleResultSet()
	v := Render(stateWith(testutil.MustParseRFC3339("2023-01-15T00:00:00Z"), &rs), now)

	if v.Body != Legend {
		t.Fatalf("expected legend only, got %q", v.Body)
	}
}

func TestRenderFutureDateIgnoresCachedResult(t *testing.T) {
	now := testutil.MustParseRFC3339("2023-01-15T12:00:00Z")
	rs := testutil.SampleResultSet(testutil.SampleGame(1, "LAL", 101, "BOS", 99))

	for _, cached := range []*games.ResultSet{&rs, nil} {
		v := Render(stateWith(testutil.MustParseRFC3339("2023-01-16T12:00:00Z"), cached), now)
		if v.Title != "2023-01-16 is in the future." {
			t.Fatalf("unexpected title %q", v.Title)
		}
		if v.Body != "" {
			t.Fatalf("expected empty body, got %q", v.Body)
		}
	}
}

func TestRenderWithoutResult(t *testing.T) {
	now := testutil.MustParseRFC3339("2023-01-15T12:00:00Z")
	v := Render(NewState(now), now)
	if v.Title != "NBA Game results of: 2023-01-15" || v.Body != "" {
		t.Fatalf("unexpected view %+v", v)
	}
}
