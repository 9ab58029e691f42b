package extract

import (
	"regexp"
	"strings"
)

// frequencyRules is the ordered frequency cascade. Word boundaries keep
// "weekly" from matching inside "biweekly".
var frequencyRules = []struct {
	frequency Frequency
	re        *regexp.Regexp
}{
	{FrequencyDaily, regexp.MustCompile(`(?i)\bdaily\b|\b(?:every|each) day\b`)},
	{FrequencyWeekly, regexp.MustCompile(`(?i)\bweekly\b|\b(?:every|each) week\b`)},
	{FrequencyBiweekly, regexp.MustCompile(`(?i)\bbi-?weekly\b|\bevery (?:two|other) weeks?\b`)},
	{FrequencyMonthly, regexp.MustCompile(`(?i)\bmonthly\b|\b(?:every|each) month\b`)},
}

// Recurrence reports whether a unit describes a repeating task and, if
// so, its frequency. When no base recurrence keyword matches, the
// function short-circuits to {false, ""} without evaluating the
// frequency cascade. A recurring unit whose period matches none of the
// four phrasings keeps IsRecurring true with Frequency unset.
func (e *Engine) Recurrence(text string) Recurrence {
	lower := strings.ToLower(text)

	if !containsAny(lower, e.cfg.RecurrenceKeywords) {
		return Recurrence{}
	}

	rec := Recurrence{IsRecurring: true}
	for _, rule := range frequencyRules {
		if rule.re.MatchString(text) {
			rec.Frequency = rule.frequency
			break
		}
	}
	return rec
}

// ExtractRecurrence classifies text with the default keyword tables.
func ExtractRecurrence(text string) Recurrence {
	return defaultEngine.Recurrence(text)
}
