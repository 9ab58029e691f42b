package extract

import (
	"regexp"
	"strings"
)

// Unit is one segmented line or bullet of source text treated as a
// single task candidate.
type Unit struct {
	// Index is the position of the unit among kept units, zero-based.
	Index int
	// Line is the 1-based line number in the source note.
	Line int
	// Raw is the source line before marker stripping.
	Raw string
	// Text is the unit with bullet and numbering markers removed. This
	// becomes the task title.
	Text string
}

var (
	// Bullet and numbering markers: "-", "*", "•", "‣", "1.", "2)".
	bulletMarkerRe = regexp.MustCompile(`^\s*(?:[-*•‣]|\d+[.)])\s+`)

	// Markdown headings and setext underline rules.
	headingRe   = regexp.MustCompile(`^\s*#{1,6}\s`)
	underlineRe = regexp.MustCompile(`^\s*(?:=+|-+)\s*$`)

	// Modal cues that make a plain prose line actionable.
	modalCueRe = regexp.MustCompile(`(?i)\b(?:needs?\s+to|should|will|must|can|has\s+to|have\s+to|is\s+going\s+to|is\s+supposed\s+to)\b`)
)

// Segment splits raw text into ordered task-candidate units.
//
// Blank lines and pure headers (markdown headings, underline rules, and
// short lines ending in a colon) are dropped. Bulleted and numbered
// lines are always units, with their markers stripped. Plain prose
// lines are units only when they carry an actionable cue: a modal verb
// or a leading action verb from the configured table. Text with no
// actionable lines yields an empty slice.
func (e *Engine) Segment(text string) []Unit {
	var units []Unit

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isHeader(trimmed) {
			continue
		}

		if bulletMarkerRe.MatchString(line) {
			stripped := strings.TrimSpace(bulletMarkerRe.ReplaceAllString(line, ""))
			if stripped == "" {
				continue
			}
			units = append(units, Unit{
				Index: len(units),
				Line:  i + 1,
				Raw:   line,
				Text:  stripped,
			})
			continue
		}

		if e.isActionable(trimmed) {
			units = append(units, Unit{
				Index: len(units),
				Line:  i + 1,
				Raw:   line,
				Text:  trimmed,
			})
		}
	}

	return units
}

// isHeader reports whether a trimmed, non-empty line is a pure header.
func isHeader(line string) bool {
	if headingRe.MatchString(line) || underlineRe.MatchString(line) {
		return true
	}
	// Section headers like "Action items:".
	if strings.HasSuffix(line, ":") && len(strings.Fields(line)) <= 4 {
		return true
	}
	return false
}

// isActionable reports whether a plain prose line looks like a task.
func (e *Engine) isActionable(line string) bool {
	if modalCueRe.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, verb := range e.cfg.ActionVerbs {
		if strings.HasPrefix(lower, verb+" ") {
			return true
		}
	}
	return false
}
