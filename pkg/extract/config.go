package extract

// Config holds the keyword tables driving the classifier extractors.
// Empty fields fall back to the compiled-in defaults, so a zero Config
// is usable. The regex cascades (assignee, project, duration, due date)
// are fixed ordered rule lists and are not configurable here.
type Config struct {
	// HighKeywords, MediumKeywords, and LowKeywords classify priority.
	// Tiers are evaluated high, then medium, then low; first match wins.
	HighKeywords   []string `koanf:"high_keywords"`
	MediumKeywords []string `koanf:"medium_keywords"`
	LowKeywords    []string `koanf:"low_keywords"`

	// InProgressKeywords are checked before DoneKeywords.
	InProgressKeywords []string `koanf:"in_progress_keywords"`
	DoneKeywords       []string `koanf:"done_keywords"`

	// RecurrenceKeywords gate the recurrence extractor. A unit with no
	// hit short-circuits to non-recurring without frequency evaluation.
	RecurrenceKeywords []string `koanf:"recurrence_keywords"`

	// ActionVerbs mark plain prose lines as actionable during
	// segmentation. Bulleted and numbered lines are always units.
	ActionVerbs []string `koanf:"action_verbs"`

	// Stopwords reject captured assignee candidates (conjunctions,
	// articles, prepositions).
	Stopwords []string `koanf:"stopwords"`

	// DefaultAssignee is returned when no assignee pattern matches and
	// the call supplies no default of its own. Empty means "Me".
	DefaultAssignee string `koanf:"default_assignee"`
}

// DefaultConfig returns the compiled-in rule tables.
func DefaultConfig() Config {
	return Config{
		HighKeywords: []string{
			"urgent", "asap", "critical", "emergency", "immediately",
			"high priority", "top priority",
		},
		MediumKeywords: []string{"soon", "important", "significant"},
		LowKeywords:    []string{"low priority", "whenever", "eventually", "someday"},
		InProgressKeywords: []string{
			"in progress", "started", "working on", "ongoing",
		},
		DoneKeywords: []string{
			"done", "completed", "finished", "closed",
		},
		RecurrenceKeywords: []string{
			"recurring", "every", "each", "repeat",
			"weekly", "daily", "monthly", "biweekly",
		},
		ActionVerbs: []string{
			"buy", "call", "check", "create", "email", "finish", "fix",
			"prepare", "review", "schedule", "send", "set up", "submit",
			"update", "write",
		},
		Stopwords: []string{
			"and", "with", "&", "the", "by", "for", "from",
			"if", "is", "of", "on", "or", "to",
		},
		DefaultAssignee: "Me",
	}
}

// withDefaults fills empty tables from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if len(c.HighKeywords) == 0 {
		c.HighKeywords = def.HighKeywords
	}
	if len(c.MediumKeywords) == 0 {
		c.MediumKeywords = def.MediumKeywords
	}
	if len(c.LowKeywords) == 0 {
		c.LowKeywords = def.LowKeywords
	}
	if len(c.InProgressKeywords) == 0 {
		c.InProgressKeywords = def.InProgressKeywords
	}
	if len(c.DoneKeywords) == 0 {
		c.DoneKeywords = def.DoneKeywords
	}
	if len(c.RecurrenceKeywords) == 0 {
		c.RecurrenceKeywords = def.RecurrenceKeywords
	}
	if len(c.ActionVerbs) == 0 {
		c.ActionVerbs = def.ActionVerbs
	}
	if len(c.Stopwords) == 0 {
		c.Stopwords = def.Stopwords
	}
	if c.DefaultAssignee == "" {
		c.DefaultAssignee = def.DefaultAssignee
	}
	return c
}
