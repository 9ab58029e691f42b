package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Dates is the result of the due-date extractor.
type Dates struct {
	Due          *time.Time
	Start        *time.Time
	HardDeadline bool
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

// dateRule is one step of the date cascade. resolve returns false when
// the match cannot be turned into a date (bad numbers, or a reference
// time is required but missing).
type dateRule struct {
	name     string
	needsRef bool
	re       *regexp.Regexp
	resolve  func(m []string, ref time.Time) (time.Time, bool)
}

var dateRules = []dateRule{
	{"iso", false,
		regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		func(m []string, _ time.Time) (time.Time, bool) {
			return buildDate(m[1], m[2], m[3], time.Time{})
		}},
	{"slash_year", false,
		regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`),
		func(m []string, _ time.Time) (time.Time, bool) {
			return buildDate(m[3], m[1], m[2], time.Time{})
		}},
	{"slash", true,
		regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`),
		func(m []string, ref time.Time) (time.Time, bool) {
			return buildDate(strconv.Itoa(ref.Year()), m[1], m[2], ref)
		}},
	{"month_day", false,
		regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`),
		resolveMonthDay},
	{"day_month", false,
		regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b(?:,?\s+(\d{4}))?`),
		func(m []string, ref time.Time) (time.Time, bool) {
			return resolveMonthDay([]string{m[0], m[2], m[1], m[3]}, ref)
		}},
	{"relative_day", true,
		regexp.MustCompile(`(?i)\b(today|tonight|tomorrow)\b`),
		func(m []string, ref time.Time) (time.Time, bool) {
			d := midnight(ref)
			if strings.EqualFold(m[1], "tomorrow") {
				d = d.AddDate(0, 0, 1)
			}
			return d, true
		}},
	{"next_period", true,
		regexp.MustCompile(`(?i)\bnext\s+(week|month)\b`),
		func(m []string, ref time.Time) (time.Time, bool) {
			if strings.EqualFold(m[1], "week") {
				return midnight(ref).AddDate(0, 0, 7), true
			}
			return midnight(ref).AddDate(0, 1, 0), true
		}},
	{"in_n", true,
		regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?)\b`),
		func(m []string, ref time.Time) (time.Time, bool) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return time.Time{}, false
			}
			if strings.HasPrefix(strings.ToLower(m[2]), "week") {
				n *= 7
			}
			return midnight(ref).AddDate(0, 0, n), true
		}},
	{"weekday", true,
		regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		func(m []string, ref time.Time) (time.Time, bool) {
			target := weekdays[strings.ToLower(m[1])]
			d := midnight(ref)
			// Strictly after the reference date.
			for {
				d = d.AddDate(0, 0, 1)
				if d.Weekday() == target {
					return d, true
				}
			}
		}},
}

var (
	hardDeadlineRe = regexp.MustCompile(`(?i)\bhard\s+deadline\b|\bmust\s+be\s+done\s+by\b|\bno\s+later\s+than\b`)
	startMarkerRe  = regexp.MustCompile(`(?i)\b(?:starting|starts?|begins?|beginning|from)\s*$`)
)

// DueDates extracts due/start dates from a unit, resolved against the
// caller-supplied reference time. The cascade is evaluated in order and
// the first resolvable match wins. Rules for relative and year-less
// phrasings are skipped when ref is zero; the extractor never reads the
// clock. A "starting/from/begins" marker immediately before the date
// populates StartDate instead of DueDate. HardDeadline is set by
// explicit phrasing regardless of whether a date resolved.
func (e *Engine) DueDates(text string, ref time.Time) Dates {
	d := Dates{HardDeadline: hardDeadlineRe.MatchString(text)}

	for _, rule := range dateRules {
		if rule.needsRef && ref.IsZero() {
			continue
		}
		loc := rule.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		m := matchStrings(text, loc)
		resolved, ok := rule.resolve(m, ref)
		if !ok {
			continue
		}
		if startMarkerRe.MatchString(text[:loc[0]]) {
			d.Start = &resolved
		} else {
			d.Due = &resolved
		}
		return d
	}
	return d
}

// ExtractDueDates extracts dates with the default engine.
func ExtractDueDates(text string, ref time.Time) Dates {
	return defaultEngine.DueDates(text, ref)
}

func resolveMonthDay(m []string, ref time.Time) (time.Time, bool) {
	month, ok := months[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year := ref.Year()
	if m[3] != "" {
		year, err = strconv.Atoi(m[3])
		if err != nil {
			return time.Time{}, false
		}
	} else if ref.IsZero() {
		// Year-less dates need a reference time to resolve.
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, dateLocation(ref)), true
}

func buildDate(year, month, day string, ref time.Time) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	mo, err := strconv.Atoi(month)
	if err != nil || mo < 1 || mo > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, dateLocation(ref)), true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dateLocation(ref time.Time) *time.Location {
	if ref.IsZero() {
		return time.UTC
	}
	return ref.Location()
}

// matchStrings expands FindStringSubmatchIndex output into submatch
// strings, with "" for absent groups.
func matchStrings(text string, loc []int) []string {
	m := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			m = append(m, "")
		} else {
			m = append(m, text[loc[i]:loc[i+1]])
		}
	}
	return m
}
