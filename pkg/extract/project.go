package extract

import (
	"regexp"
	"strings"
)

// projectRule is one step of the project-name cascade. Group 1 captures
// the candidate; family selects the validation applied to it.
type projectRule struct {
	name   string
	family int
	re     *regexp.Regexp
}

const (
	familyIntro   = 1 // "here's our plan for X" document intros
	familyTyped   = 2 // explicit "X project/campaign/..." phrasings
	familyContext = 3 // generic context clues, strictest validation
)

// projectRules is the ordered project-name cascade.
var projectRules = []projectRule{
	{"intro", familyIntro, regexp.MustCompile(`(?i)\bhere(?:'s|\s+is|\s+are)\s+(?:(?:our|the|some|my)\s+)?(?:plan|notes|agenda|update|overview|summary|ideas|thoughts)\s+(?:for|on|about|regarding)\s+(?:the\s+)?([^.!?\n]+)`)},

	{"typed_name", familyTyped, regexp.MustCompile(`\b([A-Z][A-Za-z0-9-]*(?:\s+[A-Z0-9][A-Za-z0-9-]*)*)\s+(?i:project|campaign|initiative|redesign|launch|implementation)\b`)},
	{"typed_for", familyTyped, regexp.MustCompile(`(?i)\b(?:project|campaign|initiative|redesign|launch|implementation)\s+for\s+(?:the\s+)?([^.,;!?\n]+)`)},
	{"typed_article", familyTyped, regexp.MustCompile(`(?i)\b(?:the|our)\s+([a-z0-9-]+(?:\s+[a-z0-9-]+){0,3}?)\s+(?:project|campaign|initiative|redesign|launch|implementation)\b`)},
	{"client_account", familyTyped, regexp.MustCompile(`\b([A-Z][A-Za-z0-9-]*(?:\s+[A-Z0-9][A-Za-z0-9-]*)*)\s+(?i:client|account)\b`)},

	{"context_prep", familyContext, regexp.MustCompile(`(?i)\b(?:for|on|about)\s+(?:the\s+)?([^.,;:!?\n]+?)[.!?]?\s*$`)},
	{"context_typed", familyContext, regexp.MustCompile(`(?i)\b(?:the\s+)?([a-z0-9-]+(?:\s+[a-z0-9-]+){0,3}?)\s+(?:project|plan|initiative)\b`)},
	{"title_colon", familyContext, regexp.MustCompile(`^\s*([^:\n-]+?)\s*(?::|\s-\s)`)},
}

// genericProjectTerms blocks bare structural words from becoming a
// project name under the generic family.
var genericProjectTerms = map[string]struct{}{
	"plan": {}, "meeting": {}, "discussion": {}, "agenda": {},
	"notes": {}, "minutes": {}, "summary": {}, "team": {},
	"update": {}, "overview": {}, "here": {}, "our": {},
	"status": {}, "report": {},
}

// introStopwords reject intro-family captures that grabbed filler
// instead of a name.
var introStopwords = map[string]struct{}{
	"the": {}, "our": {}, "this": {}, "for": {}, "about": {},
}

// ProjectName infers a document-level project name from the first line
// of a note (the whole text when single-line). The cascade is evaluated
// in order; the first accepted match wins. Returns "" when nothing
// matches; callers fall back to a supplied default or leave the field
// blank, they never invent a name.
func (e *Engine) ProjectName(text string) string {
	line := firstLine(text)
	if line == "" {
		return ""
	}

	for _, rule := range projectRules {
		m := rule.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if name := validateProjectCandidate(m[1], rule.family); name != "" {
			return name
		}
	}
	return ""
}

// ExtractProjectName infers a project name with the default engine.
func ExtractProjectName(text string) string {
	return defaultEngine.ProjectName(text)
}

// firstLine returns the first non-blank line of text.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// validateProjectCandidate applies per-family acceptance rules and
// cleanup. Returns "" when the candidate is rejected.
func validateProjectCandidate(candidate string, family int) string {
	candidate = strings.TrimSpace(strings.Trim(candidate, ".!?,;"))
	if candidate == "" {
		return ""
	}
	lower := strings.ToLower(candidate)

	switch family {
	case familyIntro:
		if len(candidate) < 4 {
			return ""
		}
		if _, ok := introStopwords[lower]; ok {
			return ""
		}
		return candidate

	case familyTyped:
		return candidate

	default: // familyContext
		cleaned := cleanProjectName(candidate)
		lower = strings.ToLower(cleaned)
		if len(cleaned) <= 2 {
			return ""
		}
		switch lower {
		case "the", "our", "this", "that", "it", "a", "an":
			return ""
		}
		if _, ok := genericProjectTerms[lower]; ok {
			return ""
		}
		return cleaned
	}
}

// cleanProjectName strips leading articles and trailing generic
// suffixes from a generic-family candidate.
func cleanProjectName(name string) string {
	lower := strings.ToLower(name)
	for _, prefix := range []string{"the ", "our ", "this "} {
		if strings.HasPrefix(lower, prefix) {
			name = name[len(prefix):]
			lower = strings.ToLower(name)
			break
		}
	}
	for _, suffix := range []string{" update", " status", " report", " notes", " meeting"} {
		if strings.HasSuffix(lower, suffix) {
			name = name[:len(name)-len(suffix)]
			break
		}
	}
	return strings.TrimSpace(name)
}
