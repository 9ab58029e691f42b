package identity

import "testing"

func TestIsNickname(t *testing.T) {
	r := NewResolver(Config{}, nil)

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"short to formal", "bob", "robert", true},
		{"formal to short", "robert", "bob", true},
		{"multi expansion", "chris", "christian", true},
		{"unrelated", "bob", "daniel", false},
		{"unknown name", "zelda", "robert", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.isNickname(tt.a, tt.b); got != tt.want {
				t.Errorf("isNickname(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMergeNicknames(t *testing.T) {
	r := NewResolver(Config{
		Nicknames: map[string][]string{
			"Peg": {"Margaret"},
			"dan": {"Danforth"},
		},
	}, nil)

	if !r.isNickname("peg", "margaret") {
		t.Errorf("configured entry peg/margaret not matched")
	}
	if !r.isNickname("dan", "danforth") {
		t.Errorf("configured override for dan not matched")
	}
	// Overriding a key replaces its default expansions.
	if r.isNickname("dan", "daniel") {
		t.Errorf("default expansion survived an override for dan")
	}
	// Untouched defaults remain.
	if !r.isNickname("bob", "robert") {
		t.Errorf("default entry bob/robert lost after merge")
	}
}
