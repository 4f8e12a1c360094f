package testutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-scores/internal/domain/games"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	g := SampleGame(1, "LAL", 101, "BOS", 99)
	if g.DisplayLine() != "LAL 101:99 BOS" {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	rs := SampleResultSet(g)
	if len(rs.Games) != 1 || rs.Page.CurrentPage != 1 {
		t.Fatalf("unexpected result set %+v", rs)
	}
	if len(SampleResultSet().Games) != 0 || SampleResultSet().Games == nil {
		t.Fatal("expected empty non-nil games slice")
	}
}

func TestStubProvider(t *testing.T) {
	p := &StubProvider{}
	p.Results = map[string]games.ResultSet{"2023-01-15": SampleResultSet(SampleGame(1, "LAL", 1, "BOS", 2))}

	rs, err := p.FetchGames(context.Background(), "2023-01-15")
	if err != nil || len(rs.Games) != 1 {
		t.Fatalf("unexpected result %+v %v", rs, err)
	}
	rs, err = p.FetchGames(context.Background(), "2023-01-16")
	if err != nil || len(rs.Games) != 0 {
		t.Fatalf("expected default result, got %+v %v", rs, err)
	}

	p.SetErr(errors.New("boom"))
	if _, err := p.FetchGames(context.Background(), "2023-01-15"); err == nil {
		t.Fatal("expected configured error")
	}
	if got := p.Calls(); len(got) != 3 || got[1] != "2023-01-16" {
		t.Fatalf("unexpected calls %v", got)
	}
}

func TestRoundTripperHelpers(t *testing.T) {
	rt := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return JSONResponse(http.StatusTeapot, `{"ok":true}`), nil
	})
	client := &http.Client{Transport: rt}
	resp, err := client.Get("http://example.com")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusTeapot || !strings.Contains(string(body), "ok") {
		t.Fatalf("unexpected response %d %s", resp.StatusCode, body)
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected buffered log, got %q", buf.String())
	}
}
