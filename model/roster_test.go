package model

import (
	"reflect"
	"testing"
)

func TestNewRoster(t *testing.T) {
	r, err := NewRoster(map[string][]string{
		"JJ":    {"Thunder", "Spurs", "Pistons", "Pelicans"},
		"Nate":  {"Magic", "Hawks", "Grizzlies", "Suns"},
		"Chris": {"Warriors", "Pacers", "Mavericks", "Hornets"},
		"Adam":  {"Nuggets", "Celtics", "Heat", "Kings"},
		"Duke":  {"Knicks", "Clippers", "Raptors", "Bulls"},
		"Nick":  {"Rockets", "Timberwolves", "76ers", "Trail Blazers"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r) != 7 {
		t.Errorf("expected 6 participants plus Undrafted, got %d entries", len(r))
	}

	// 24 teams drafted out of 30 leaves 6 undrafted
	undrafted := r[UndraftedParticipant]
	expected := []string{"Bucks", "Cavaliers", "Jazz", "Lakers", "Nets", "Wizards"}
	if !reflect.DeepEqual(undrafted, expected) {
		t.Errorf("expected undrafted %v, got %v", expected, undrafted)
	}

	if owner := r.Owner("Thunder"); owner != "JJ" {
		t.Errorf("expected JJ to own the Thunder, got %q", owner)
	}
	if owner := r.Owner("Jazz"); owner != UndraftedParticipant {
		t.Errorf("expected the Jazz to be undrafted, got %q", owner)
	}
	if owner := r.Owner("Sonics"); owner != "" {
		t.Errorf("expected no owner for an unknown team, got %q", owner)
	}
}

func TestNewRosterNormalizesNames(t *testing.T) {
	r, err := NewRoster(map[string][]string{
		"A": {"okc", "LA Clippers"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(r["A"], []string{"Thunder", "Clippers"}) {
		t.Errorf("expected canonical names, got %v", r["A"])
	}
}

func TestNewRosterErrors(t *testing.T) {
	tests := []struct {
		name        string
		assignments map[string][]string
	}{
		{
			name:        "unknown team",
			assignments: map[string][]string{"A": {"Sonics"}},
		},
		{
			name: "team drafted twice",
			assignments: map[string][]string{
				"A": {"Thunder"},
				"B": {"OKC"},
			},
		},
		{
			name:        "reserved participant name",
			assignments: map[string][]string{UndraftedParticipant: {"Thunder"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRoster(tc.assignments); err == nil {
				t.Errorf("expected an error for %s", tc.name)
			}
		})
	}
}

func TestParticipants(t *testing.T) {
	r, err := NewRoster(map[string][]string{
		"Zoe": {"Thunder"},
		"Amy": {"Spurs"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Amy", "Zoe", UndraftedParticipant}
	if got := r.Participants(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
