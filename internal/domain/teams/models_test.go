package teams

import (
	"encoding/json"
	"testing"
)

func TestTeamJSONUsesUpstreamKeys(t *testing.T) {
	raw, err := json.Marshal(Team{ID: 14, Abbreviation: "LAL", FullName: "Los Angeles Lakers"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"id", "abbreviation", "city", "conference", "division", "full_name", "name"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("expected key %q in %s", key, raw)
		}
	}
	if decoded["full_name"] != "Los Angeles Lakers" {
		t.Fatalf("unexpected full_name %v", decoded["full_name"])
	}
}
