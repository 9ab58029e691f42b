package extract

import "strings"

// Status classifies a unit's completion state. In-progress keywords are
// checked before done keywords; first match wins. The order is fixed
// for reproducibility even though no unit is expected to match both.
// Units with no status keyword default to todo.
func (e *Engine) Status(text string) Status {
	lower := strings.ToLower(text)

	if containsAny(lower, e.cfg.InProgressKeywords) {
		return StatusInProgress
	}
	if containsAny(lower, e.cfg.DoneKeywords) {
		return StatusDone
	}
	return StatusTodo
}

// ExtractStatus classifies text with the default keyword tables.
func ExtractStatus(text string) Status {
	return defaultEngine.Status(text)
}
