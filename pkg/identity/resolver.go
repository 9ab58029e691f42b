package identity

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Resolver matches free-text names against a user roster.
type Resolver struct {
	nicknames map[string][]string
	threshold float64
	logger    *zap.Logger
}

// NewResolver creates a resolver. A nil logger disables diagnostics;
// a zero threshold falls back to DefaultThreshold.
func NewResolver(cfg Config, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{
		nicknames: mergeNicknames(cfg.Nicknames),
		threshold: threshold,
		logger:    logger,
	}
}

// defaultResolver backs the package-level helpers.
var defaultResolver = NewResolver(Config{}, nil)

// WithThreshold returns a resolver sharing this one's nickname table
// but using a different candidate threshold. Zero returns the receiver
// unchanged.
func (r *Resolver) WithThreshold(threshold float64) *Resolver {
	if threshold == 0 || threshold == r.threshold {
		return r
	}
	clone := *r
	clone.threshold = threshold
	return &clone
}

// FindMatches returns roster users matching the query name, in tier
// priority order. The exact/contains tier collects every qualifying
// user; the nickname tier stops at the first hit. An empty result means
// the caller should prompt for disambiguation or accept a non-roster
// assignee. The similarity threshold never gates these tiers.
func (r *Resolver) FindMatches(name string, roster []User) []User {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil
	}

	// Tier 1: exact/contains. Collect all hits.
	var matches []User
	for _, user := range roster {
		full := strings.ToLower(strings.TrimSpace(user.Name))
		if full == "" {
			continue
		}
		first := firstToken(full)

		switch {
		case query == full || query == first:
			matches = append(matches, user)
		case strings.Contains(full, query):
			matches = append(matches, user)
		case strings.Contains(query, first):
			matches = append(matches, user)
		}
	}
	if len(matches) > 0 {
		r.logger.Debug("resolved by exact/contains tier",
			zap.String("query", name),
			zap.Int("matches", len(matches)),
		)
		return matches
	}

	// Tier 2: nickname table, first hit wins.
	for _, user := range roster {
		first := firstToken(strings.ToLower(strings.TrimSpace(user.Name)))
		if first == "" {
			continue
		}
		if r.isNickname(query, first) {
			r.logger.Debug("resolved by nickname tier",
				zap.String("query", name),
				zap.String("user", user.Name),
			)
			return []User{user}
		}
	}

	return nil
}

// Candidates scores every roster user against the query name using
// normalized Levenshtein similarity, filters by the resolver threshold,
// and sorts descending. It is a secondary ranking surface for review
// UIs and does not participate in FindMatches tier selection.
func (r *Resolver) Candidates(name string, roster []User) []MatchCandidate {
	query := strings.TrimSpace(name)
	if query == "" {
		return nil
	}

	var candidates []MatchCandidate
	for _, user := range roster {
		score := Similarity(query, firstToken(user.Name))
		if full := Similarity(query, user.Name); full > score {
			score = full
		}
		if score < r.threshold {
			continue
		}
		candidates = append(candidates, MatchCandidate{User: user, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// FindMatches resolves a name with the default resolver configuration.
func FindMatches(name string, roster []User) []User {
	return defaultResolver.FindMatches(name, roster)
}

// firstToken returns the first whitespace-separated token of a name.
func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
