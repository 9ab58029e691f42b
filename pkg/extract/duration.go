package extract

import (
	"regexp"
	"strings"
)

// durationUnitRe is the time unit every duration hit must carry.
var durationUnitRe = regexp.MustCompile(`(?i)\b(?:hours?|hrs?|minutes?|mins?|days?)\b`)

// durationRules is the ordered duration cascade. A rule's match only
// counts when the full matched phrase contains a time unit, so "this
// will take a while" falls through instead of matching.
var durationRules = []struct {
	name string
	re   *regexp.Regexp
}{
	{"will_take", regexp.MustCompile(`(?i)\b(?:this|it)\s+will\s+take\s+[^.,;!?\n]+`)},
	{"to_complete", regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*\w+\s+to\s+(?:complete|finish|do)\b`)},
	{"estimated_time", regexp.MustCompile(`(?i)\bestimated\s+time\s*:\s*[^.,;!?\n]+`)},
	{"duration_label", regexp.MustCompile(`(?i)\bduration\s*:\s*[^.,;!?\n]+`)},
	{"takes", regexp.MustCompile(`(?i)\btakes\s+[^.,;!?\n]+`)},
	{"bare_amount", regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:hours?|hrs?|minutes?|mins?|days?)\b`)},
}

// Duration extracts a time-estimate phrase from a unit. The returned
// value is the matched phrase verbatim ("2 hours", "estimated time: 30
// mins"), not a normalized number; consumers that need minutes parse it
// themselves. Returns "" when no rule with a valid unit matches.
func (e *Engine) Duration(text string) string {
	for _, rule := range durationRules {
		phrase := rule.re.FindString(text)
		if phrase == "" {
			continue
		}
		if !durationUnitRe.MatchString(phrase) {
			continue
		}
		return strings.TrimSpace(phrase)
	}
	return ""
}

// ExtractDuration extracts a time-estimate phrase with the default
// engine.
func ExtractDuration(text string) string {
	return defaultEngine.Duration(text)
}
