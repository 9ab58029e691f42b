package extract

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine runs the full extraction pipeline: segmenter, per-unit field
// extractors, and the task assembler. An Engine is immutable after
// construction and safe for concurrent use.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine creates an extraction engine. Empty config tables fall back
// to the compiled-in defaults; a nil logger disables diagnostics.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// defaultEngine backs the package-level helper functions.
var defaultEngine = NewEngine(Config{}, nil)

// Extract derives task records from raw note text.
//
// Each segmented unit becomes exactly one Task: the unit text is the
// title, every field extractor runs against it, and unset fields take
// their documented defaults. The document-level project name (explicit
// via Options, otherwise inferred from the first line) is applied to
// all tasks. Returns an empty slice when the note has no actionable
// lines; that is a normal outcome, not a fault.
func (e *Engine) Extract(rawText string, opts Options) []Task {
	units := e.Segment(rawText)

	project := opts.ProjectName
	if project == "" {
		project = e.ProjectName(rawText)
	}

	tasks := make([]Task, 0, len(units))
	for _, unit := range units {
		rec := e.Recurrence(unit.Text)
		dates := e.DueDates(unit.Text, opts.ReferenceTime)

		tasks = append(tasks, Task{
			ID:           newTaskID(),
			Title:        unit.Text,
			DueDate:      dates.Due,
			StartDate:    dates.Start,
			HardDeadline: dates.HardDeadline,
			Priority:     e.Priority(unit.Text),
			Status:       e.Status(unit.Text),
			Assignee:     e.Assignee(unit.Text, opts.DefaultAssignee),
			Project:      project,
			Duration:     e.Duration(unit.Text),
			IsRecurring:  rec.IsRecurring,
			Frequency:    rec.Frequency,
		})
	}

	e.logger.Debug("extraction complete",
		zap.Int("units", len(units)),
		zap.Int("tasks", len(tasks)),
		zap.String("project", project),
	)

	return tasks
}

// ExtractTasks runs the default engine against raw note text.
func ExtractTasks(rawText string, opts Options) []Task {
	return defaultEngine.Extract(rawText, opts)
}

// newTaskID returns an opaque unique task identifier.
func newTaskID() string {
	return "task_" + uuid.New().String()
}
