package identity

import "testing"

var roster = []User{
	{ID: "1", Name: "Daniel Smith", Email: "daniel@example.com"},
	{ID: "2", Name: "Dana White", Email: "dana@example.com"},
	{ID: "3", Name: "Robert Jones", Email: "robert@example.com"},
	{ID: "4", Name: "Sarah", Email: "sarah@example.com"},
}

func TestFindMatchesExactTier(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"exact full name", "Daniel Smith", []string{"1"}},
		{"exact first name", "Sarah", []string{"4"}},
		{"contains collects all hits", "Dan", []string{"1", "2"}},
		{"query contains first name", "Sarah Johnson", []string{"4"}},
		{"case insensitive", "DANIEL SMITH", []string{"1"}},
		{"no match", "Quentin", nil},
		{"empty query", "", nil},
		{"whitespace query", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMatches(tt.query, roster)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FindMatches(%q) returned %d users, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, user := range got {
				if user.ID != tt.wantIDs[i] {
					t.Errorf("FindMatches(%q)[%d].ID = %q, want %q", tt.query, i, user.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFindMatchesNicknameTier(t *testing.T) {
	got := FindMatches("Bob", roster)

	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("FindMatches(%q) = %v, want Robert Jones only", "Bob", got)
	}
}

func TestFindMatchesNicknameFirstHitWins(t *testing.T) {
	twoRoberts := []User{
		{ID: "3", Name: "Robert Jones"},
		{ID: "5", Name: "Robert Stone"},
	}

	got := FindMatches("Bob", twoRoberts)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("FindMatches(%q) = %v, want first nickname hit only", "Bob", got)
	}
}

func TestFindMatchesExactTierBeatsNicknames(t *testing.T) {
	mixed := []User{
		{ID: "3", Name: "Robert Jones"},
		{ID: "6", Name: "Bobby Draper"},
	}

	// "bobby draper" contains "bob", so the exact/contains tier resolves
	// before the nickname table is consulted.
	got := FindMatches("Bob", mixed)
	if len(got) != 1 || got[0].ID != "6" {
		t.Fatalf("FindMatches(%q) = %v, want Bobby Draper", "Bob", got)
	}
}

func TestFindMatchesEmptyRoster(t *testing.T) {
	if got := FindMatches("Dan", nil); got != nil {
		t.Fatalf("FindMatches on empty roster = %v, want nil", got)
	}
}

func TestCandidates(t *testing.T) {
	r := NewResolver(Config{}, nil)

	got := r.Candidates("Danie", roster)
	if len(got) != 2 {
		t.Fatalf("Candidates returned %d entries, want 2: %v", len(got), got)
	}
	if got[0].User.ID != "1" || got[1].User.ID != "2" {
		t.Errorf("Candidates order = [%s %s], want [1 2]", got[0].User.ID, got[1].User.ID)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("Candidates not sorted descending: %v >= %v expected", got[0].Score, got[1].Score)
	}
}

func TestCandidatesThreshold(t *testing.T) {
	r := NewResolver(Config{Threshold: 0.9}, nil)

	if got := r.Candidates("Danie", roster); len(got) != 0 {
		t.Fatalf("Candidates with 0.9 threshold = %v, want none", got)
	}
}

func TestWithThreshold(t *testing.T) {
	r := NewResolver(Config{}, nil)

	strict := r.WithThreshold(0.9)
	if got := strict.Candidates("Danie", roster); len(got) != 0 {
		t.Fatalf("Candidates with 0.9 threshold = %v, want none", got)
	}

	// Zero keeps the receiver.
	if r.WithThreshold(0) != r {
		t.Error("WithThreshold(0) allocated a new resolver")
	}
}

func TestCandidatesEmptyQuery(t *testing.T) {
	r := NewResolver(Config{}, nil)

	if got := r.Candidates("", roster); got != nil {
		t.Fatalf("Candidates(\"\") = %v, want nil", got)
	}
}
