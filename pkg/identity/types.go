package identity

// User is a roster entry, externally supplied and read-only to the
// resolver.
type User struct {
	ID    string `json:"id" koanf:"id"`
	Name  string `json:"name" koanf:"name"`
	Email string `json:"email,omitempty" koanf:"email"`
}

// MatchCandidate pairs a roster user with a similarity score in [0,1].
// Candidates are ephemeral: recomputed per call, never persisted.
type MatchCandidate struct {
	User  User    `json:"user"`
	Score float64 `json:"score"`
}

// Config holds resolver configuration.
type Config struct {
	// Threshold filters Candidates results. Zero means the default
	// of 0.6. It does not gate the FindMatches tiers.
	Threshold float64 `koanf:"threshold"`

	// Nicknames maps a short form to its formal expansions, checked
	// bidirectionally. Entries merge over the compiled-in table.
	Nicknames map[string][]string `koanf:"nicknames"`
}

// DefaultThreshold is the similarity cutoff used when none is
// configured.
const DefaultThreshold = 0.6
