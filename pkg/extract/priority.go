package extract

import "strings"

// Priority classifies a unit by keyword tier. Tiers are evaluated in
// order high, medium, low; the first tier with a hit wins. A unit with
// no priority keyword at all returns "" (unset); inferring priority
// from title wording is a caller-level fallback, not part of this
// extractor.
func (e *Engine) Priority(text string) Priority {
	lower := strings.ToLower(text)

	tiers := []struct {
		priority Priority
		keywords []string
	}{
		{PriorityHigh, e.cfg.HighKeywords},
		{PriorityMedium, e.cfg.MediumKeywords},
		{PriorityLow, e.cfg.LowKeywords},
	}

	for _, tier := range tiers {
		if containsAny(lower, tier.keywords) {
			return tier.priority
		}
	}
	return ""
}

// ExtractPriority classifies text with the default keyword tables.
func ExtractPriority(text string) Priority {
	return defaultEngine.Priority(text)
}

// containsAny reports whether lowered text contains any keyword.
// Keywords are matched case-insensitively as substrings.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
