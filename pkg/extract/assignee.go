package extract

import (
	"regexp"
	"strings"
)

// assigneeRule is one step of the assignee cascade. Group 1 of the
// regex captures the candidate name.
type assigneeRule struct {
	name string
	re   *regexp.Regexp
}

// conjunctionRe detects "X and Y <modal>" clauses. It takes priority
// over the cascade so multi-subject lines yield only the first name.
var conjunctionRe = regexp.MustCompile(`(?i)^\s*([A-Za-z]+)\s+and\s+[A-Za-z]+\s+(?:needs?|should|will|can|must|ha(?:s|ve)\s+to|is|are)\b`)

// assigneeRules is the ordered assignee cascade, evaluated
// first-accepted-match-wins. Captured candidates equal to a stopword
// are rejected and the cascade continues.
var assigneeRules = []assigneeRule{
	{"label", regexp.MustCompile(`(?i)(?:assigned\s+to|assignee|responsible|owner)\s*:\s*([A-Za-z]+(?:\s+[A-Za-z]+)?)`)},
	{"verb", regexp.MustCompile(`(?i)\b(?:assign(?:ed)?\s+to|give\s+to)\s+([A-Za-z]+)`)},
	{"possessive", regexp.MustCompile(`(?i)\b([A-Za-z]+)'s\s+(?:task|responsibility|job|assignment)\b`)},
	{"modal", regexp.MustCompile(`(?i)\b([A-Za-z]+)\s+(?:needs?\s+to|should|will|can|must|has\s+to|have\s+to|is\s+going\s+to|is\s+supposed\s+to)\b`)},
	{"copula", regexp.MustCompile(`(?i)\b([A-Za-z]+)\s+is\s+(?:responsible|going|supposed|expected)\b`)},
	{"bare_must", regexp.MustCompile(`(?i)\b([A-Za-z]+)\s+must\b`)},
	{"parenthetical", regexp.MustCompile(`\(([A-Za-z]+(?:\s+[A-Za-z]+)?)\)`)},
	{"mention", regexp.MustCompile(`@([A-Za-z0-9_]+)`)},
	{"line_initial", regexp.MustCompile(`(?i)^\s*([A-Za-z]+)\s+(?:to|will|should|can|needs?)\b`)},
}

// Assignee extracts the task owner from a unit. defaultName is used
// when no pattern yields an accepted candidate; an empty defaultName
// falls back to the configured default, then to "Me". The result is
// never empty: absence of a match always resolves to a default
// identity.
func (e *Engine) Assignee(text, defaultName string) string {
	if m := conjunctionRe.FindStringSubmatch(text); m != nil {
		if name := e.acceptCandidate(m[1]); name != "" {
			return name
		}
	}

	for _, rule := range assigneeRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := e.acceptCandidate(m[1]); name != "" {
			return name
		}
	}

	if defaultName != "" {
		return defaultName
	}
	return e.cfg.DefaultAssignee
}

// acceptCandidate trims a captured name and rejects stopwords. Returns
// "" when the candidate is rejected.
func (e *Engine) acceptCandidate(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}
	lower := strings.ToLower(candidate)
	for _, stop := range e.cfg.Stopwords {
		if lower == stop {
			return ""
		}
	}
	return candidate
}

// ExtractAssignee extracts the task owner with the default rule tables.
// With no match and no default it returns "Me".
func ExtractAssignee(text, defaultName string) string {
	return defaultEngine.Assignee(text, defaultName)
}
